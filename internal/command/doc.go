// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the CLI command set for tfref. It wires flags,
// validators and actions for the query subcommands.
package command
