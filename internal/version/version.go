// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package version carries the build version string.
package version

// Version is stamped at build time via -ldflags.
var Version = "dev"
