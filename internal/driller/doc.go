// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package driller resolves dotted paths against JSON documents, used by
// commands that pluck single values out of resolved outputs.
package driller
