// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// EtcdV2BackendArgs configures a remote state stored in the etcd v2 backend.
// State in the etcd v3 backend uses EtcdV3BackendArgs instead.
type EtcdV2BackendArgs struct {
	// Path at which the state is stored. Required.
	Path string `hcl:"path,optional" yaml:"path,omitempty"`
	// Endpoints is a space-separated list of etcd endpoints. Required.
	Endpoints string `hcl:"endpoints,optional" yaml:"endpoints,omitempty"`
	Username  string `hcl:"username,optional" yaml:"username,omitempty"`
	Password  string `hcl:"password,optional" yaml:"password,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *EtcdV2BackendArgs) Kind() BackendKind { return EtcdV2 }

func (a *EtcdV2BackendArgs) Validate() error {
	if err := requireString("path", a.Path); err != nil {
		return err
	}
	return requireString("endpoints", a.Endpoints)
}

func (a *EtcdV2BackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "path", a.Path)
	setString(p, "endpoints", a.Endpoints)
	setString(p, "username", a.Username)
	setString(p, "password", a.Password)
	setString(p, "workspace", a.Workspace)
	return p
}

// EtcdV3BackendArgs configures a remote state stored in the etcd v3 backend.
// Unlike v2, endpoints is a proper list.
type EtcdV3BackendArgs struct {
	// Endpoints lists the etcd endpoints. Required, non-empty.
	Endpoints []string `hcl:"endpoints,optional" yaml:"endpoints,omitempty"`
	// Username/Password are sourced from ETCDV3_USERNAME/ETCDV3_PASSWORD by
	// the provider when unset.
	Username string `hcl:"username,optional" yaml:"username,omitempty"`
	Password string `hcl:"password,optional" yaml:"password,omitempty"`
	// Prefix is prepended to keys when storing state.
	Prefix string `hcl:"prefix,optional" yaml:"prefix,omitempty"`
	// TLS material for client authentication.
	CACertPath string `hcl:"cacert_path,optional" yaml:"cacert_path,omitempty"`
	CertPath   string `hcl:"cert_path,optional" yaml:"cert_path,omitempty"`
	KeyPath    string `hcl:"key_path,optional" yaml:"key_path,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *EtcdV3BackendArgs) Kind() BackendKind { return EtcdV3 }

func (a *EtcdV3BackendArgs) Validate() error {
	if len(a.Endpoints) == 0 {
		return requireString("endpoints", "")
	}
	return nil
}

func (a *EtcdV3BackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setList(p, "endpoints", a.Endpoints)
	setString(p, "username", a.Username)
	setString(p, "password", a.Password)
	setString(p, "prefix", a.Prefix)
	setString(p, "cacert_path", a.CACertPath)
	setString(p, "cert_path", a.CertPath)
	setString(p, "key_path", a.KeyPath)
	setString(p, "workspace", a.Workspace)
	return p
}
