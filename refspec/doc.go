// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package refspec loads reference definitions from declarative files. A
// definition names a reference, its backend kind, and the backend
// configuration; HCL and YAML syntaxes are supported, chosen by file
// extension.
package refspec
