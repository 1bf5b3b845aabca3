// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// SwiftBackendArgs configures a remote state stored in the OpenStack Swift
// backend. Authentication fields are sourced from the usual OS_* environment
// variables by the provider when unset.
type SwiftBackendArgs struct {
	// AuthURL is the Identity authentication URL (OS_AUTH_URL). Required.
	AuthURL string `hcl:"auth_url,optional" yaml:"auth_url,omitempty"`
	// Container holding the state file. Required.
	Container string `hcl:"container,optional" yaml:"container,omitempty"`
	Username  string `hcl:"username,optional" yaml:"username,omitempty"`
	UserID    string `hcl:"user_id,optional" yaml:"user_id,omitempty"`
	Password  string `hcl:"password,optional" yaml:"password,omitempty"`
	// Token logs in instead of username/password (OS_AUTH_TOKEN).
	Token      string `hcl:"token,optional" yaml:"token,omitempty"`
	RegionName string `hcl:"region_name,optional" yaml:"region_name,omitempty"`
	// Tenant (identity v2) or project (identity v3) scope.
	TenantID   string `hcl:"tenant_id,optional" yaml:"tenant_id,omitempty"`
	TenantName string `hcl:"tenant_name,optional" yaml:"tenant_name,omitempty"`
	// Domain scope for identity v3.
	DomainID   string `hcl:"domain_id,optional" yaml:"domain_id,omitempty"`
	DomainName string `hcl:"domain_name,optional" yaml:"domain_name,omitempty"`
	// Insecure disables server TLS verification (OS_INSECURE).
	Insecure *bool `hcl:"insecure,optional" yaml:"insecure,omitempty"`
	// TLS client material (OS_CACERT, OS_CERT, OS_KEY).
	CACertFile string `hcl:"cacert_file,optional" yaml:"cacert_file,omitempty"`
	Cert       string `hcl:"cert,optional" yaml:"cert,omitempty"`
	Key        string `hcl:"key,optional" yaml:"key,omitempty"`
}

func (a *SwiftBackendArgs) Kind() BackendKind { return Swift }

func (a *SwiftBackendArgs) Validate() error {
	if err := requireString("auth_url", a.AuthURL); err != nil {
		return err
	}
	return requireString("container", a.Container)
}

func (a *SwiftBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "auth_url", a.AuthURL)
	setString(p, "container", a.Container)
	setString(p, "username", a.Username)
	setString(p, "user_id", a.UserID)
	setString(p, "password", a.Password)
	setString(p, "token", a.Token)
	setString(p, "region_name", a.RegionName)
	setString(p, "tenant_id", a.TenantID)
	setString(p, "tenant_name", a.TenantName)
	setString(p, "domain_id", a.DomainID)
	setString(p, "domain_name", a.DomainName)
	setBool(p, "insecure", a.Insecure)
	setString(p, "cacert_file", a.CACertFile)
	setString(p, "cert", a.Cert)
	setString(p, "key", a.Key)
	return p
}
