// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package remote serves reads for the remote enhanced backend (Terraform
// Cloud/Enterprise). Outputs are fetched through the TFE API rather than by
// downloading state, so no state file is ever parsed in-process. Results
// are cached on disk keyed by state version id.
package remote
