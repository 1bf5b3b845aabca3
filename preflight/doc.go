// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package preflight runs opt-in existence checks against backend
// configurations before a reference is handed to callers that will block on
// its outputs. Checks confirm that the configured state can be reached;
// they never download or inspect it.
package preflight
