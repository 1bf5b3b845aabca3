// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// ConsulBackendArgs configures a remote state stored in the Consul KV store.
type ConsulBackendArgs struct {
	// Path in the Consul KV store. Required.
	Path string `hcl:"path,optional" yaml:"path,omitempty"`
	// AccessToken is the Consul access token. Required here; the provider
	// sources CONSUL_HTTP_TOKEN when the wire value is absent.
	AccessToken string `hcl:"access_token,optional" yaml:"access_token,omitempty"`
	// Address is dnsname:port of the Consul HTTP endpoint. Defaults to the
	// local agent listener.
	Address string `hcl:"address,optional" yaml:"address,omitempty"`
	// Scheme is http or https.
	Scheme     string `hcl:"scheme,optional" yaml:"scheme,omitempty"`
	Datacenter string `hcl:"datacenter,optional" yaml:"datacenter,omitempty"`
	// HTTPAuth holds basic-auth credentials, "user" or "user:pass"
	// (CONSUL_HTTP_AUTH).
	HTTPAuth string `hcl:"http_auth,optional" yaml:"http_auth,omitempty"`
	// Gzip compresses the state data when true.
	Gzip *bool `hcl:"gzip,optional" yaml:"gzip,omitempty"`
	// TLS material paths (CONSUL_CAFILE, CONSUL_CLIENT_CERT,
	// CONSUL_CLIENT_KEY). CertFile requires KeyFile.
	CAFile   string `hcl:"ca_file,optional" yaml:"ca_file,omitempty"`
	CertFile string `hcl:"cert_file,optional" yaml:"cert_file,omitempty"`
	KeyFile  string `hcl:"key_file,optional" yaml:"key_file,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *ConsulBackendArgs) Kind() BackendKind { return Consul }

func (a *ConsulBackendArgs) Validate() error {
	if err := requireString("path", a.Path); err != nil {
		return err
	}
	return requireString("access_token", a.AccessToken)
}

func (a *ConsulBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "path", a.Path)
	setString(p, "access_token", a.AccessToken)
	setString(p, "address", a.Address)
	setString(p, "scheme", a.Scheme)
	setString(p, "datacenter", a.Datacenter)
	setString(p, "http_auth", a.HTTPAuth)
	setBool(p, "gzip", a.Gzip)
	setString(p, "ca_file", a.CAFile)
	setString(p, "cert_file", a.CertFile)
	setString(p, "key_file", a.KeyFile)
	setString(p, "workspace", a.Workspace)
	return p
}
