// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// MantaBackendArgs configures a remote state stored in the Manta backend.
type MantaBackendArgs struct {
	// Account is the name of the Manta account. Required here; the provider
	// sources SDC_ACCOUNT or TRITON_ACCOUNT when the wire value is absent.
	Account string `hcl:"account,optional" yaml:"account,omitempty"`
	// User is the username with which to authenticate.
	User string `hcl:"user,optional" yaml:"user,omitempty"`
	// URL is the Manta API endpoint (MANTA_URL). Defaults to
	// https://us-east.manta.joyent.com.
	URL string `hcl:"url,optional" yaml:"url,omitempty"`
	// KeyMaterial is the private key matching KeyID. When unset the local
	// SSH agent signs requests.
	KeyMaterial string `hcl:"key_material,optional" yaml:"key_material,omitempty"`
	// KeyID is the fingerprint of the public key.
	KeyID string `hcl:"key_id,optional" yaml:"key_id,omitempty"`
	// Path relative to the private storage directory.
	Path string `hcl:"path,optional" yaml:"path,omitempty"`
	// InsecureSkipTLSVerify skips TLS verification. Defaults to false.
	InsecureSkipTLSVerify *bool `hcl:"insecure_skip_tls_verify,optional" yaml:"insecure_skip_tls_verify,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *MantaBackendArgs) Kind() BackendKind { return Manta }

func (a *MantaBackendArgs) Validate() error {
	return requireString("account", a.Account)
}

func (a *MantaBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "account", a.Account)
	setString(p, "user", a.User)
	setString(p, "url", a.URL)
	setString(p, "key_material", a.KeyMaterial)
	setString(p, "key_id", a.KeyID)
	setString(p, "path", a.Path)
	setBool(p, "insecure_skip_tls_verify", a.InsecureSkipTLSVerify)
	setString(p, "workspace", a.Workspace)
	return p
}
