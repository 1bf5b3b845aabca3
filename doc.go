// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// tfrefgo is the main package for the tfref command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
