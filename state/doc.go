// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package state models references to Terraform remote state. A Reference
// binds a backend kind to its matching argument variant, validates the
// pairing, and exposes the root outputs of the referenced state as deferred
// values resolved through an external engine. The package itself performs no
// I/O and reads no environment variables; everything backend-specific happens
// on the other side of the engine boundary.
package state
