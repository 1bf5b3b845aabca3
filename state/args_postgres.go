// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// PostgresBackendArgs configures a remote state stored in the Postgres
// backend.
type PostgresBackendArgs struct {
	// ConnStr is a postgres:// connection URL. Required.
	ConnStr string `hcl:"conn_str,optional" yaml:"conn_str,omitempty"`
	// SchemaName of the automatically managed schema. The provider defaults
	// it to terraform_remote_state.
	SchemaName string `hcl:"schema_name,optional" yaml:"schema_name,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *PostgresBackendArgs) Kind() BackendKind { return Postgres }

func (a *PostgresBackendArgs) Validate() error {
	return requireString("conn_str", a.ConnStr)
}

func (a *PostgresBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "conn_str", a.ConnStr)
	setString(p, "schema_name", a.SchemaName)
	setString(p, "workspace", a.Workspace)
	return p
}
