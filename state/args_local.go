// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// LocalBackendArgs configures a remote state stored in the local enhanced
// backend, i.e. a state file on disk.
type LocalBackendArgs struct {
	// Path to the Terraform state file. Required.
	Path string `hcl:"path,optional" yaml:"path,omitempty"`
}

func (a *LocalBackendArgs) Kind() BackendKind { return Local }

func (a *LocalBackendArgs) Validate() error {
	return requireString("path", a.Path)
}

func (a *LocalBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "path", a.Path)
	return p
}
