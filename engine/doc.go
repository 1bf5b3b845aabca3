// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package engine dispatches remote state reads to registered providers.
//
// The engine owns no backend logic itself. Each resource token is served by
// a Provider; the engine routes requests, runs them concurrently, and
// delivers results on the channel contract that package state expects.
package engine
