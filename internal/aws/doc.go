// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package aws adapts backend configuration into AWS SDK v2 clients for the
// commands and checks that touch S3-hosted state.
package aws
