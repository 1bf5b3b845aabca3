// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// HTTPBackendArgs configures a remote state stored in the HTTP backend.
type HTTPBackendArgs struct {
	// Address of the HTTP endpoint. Required.
	Address string `hcl:"address,optional" yaml:"address,omitempty"`
	// UpdateMethod defaults to POST.
	UpdateMethod string `hcl:"update_method,optional" yaml:"update_method,omitempty"`
	// Lock/unlock REST endpoints; leaving the addresses unset disables
	// locking. Methods default to LOCK and UNLOCK.
	LockAddress   string `hcl:"lock_address,optional" yaml:"lock_address,omitempty"`
	LockMethod    string `hcl:"lock_method,optional" yaml:"lock_method,omitempty"`
	UnlockAddress string `hcl:"unlock_address,optional" yaml:"unlock_address,omitempty"`
	UnlockMethod  string `hcl:"unlock_method,optional" yaml:"unlock_method,omitempty"`
	// Basic-auth credentials.
	Username string `hcl:"username,optional" yaml:"username,omitempty"`
	Password string `hcl:"password,optional" yaml:"password,omitempty"`
	// SkipCertValidation disables TLS verification. Defaults to false.
	SkipCertValidation *bool `hcl:"skip_cert_validation,optional" yaml:"skip_cert_validation,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *HTTPBackendArgs) Kind() BackendKind { return HTTP }

func (a *HTTPBackendArgs) Validate() error {
	return requireString("address", a.Address)
}

func (a *HTTPBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "address", a.Address)
	setString(p, "update_method", a.UpdateMethod)
	setString(p, "lock_address", a.LockAddress)
	setString(p, "lock_method", a.LockMethod)
	setString(p, "unlock_address", a.UnlockAddress)
	setString(p, "unlock_method", a.UnlockMethod)
	setString(p, "username", a.Username)
	setString(p, "password", a.Password)
	setBool(p, "skip_cert_validation", a.SkipCertValidation)
	setString(p, "workspace", a.Workspace)
	return p
}
