// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// RemoteBackendArgs configures a workspace of the remote enhanced backend
// (Terraform Cloud/Enterprise). Exactly one of WorkspaceName or
// WorkspacePrefix must be set; providing both, or neither, is a validation
// error.
type RemoteBackendArgs struct {
	// Organization containing the targeted workspace(s). Required.
	Organization string `hcl:"organization,optional" yaml:"organization,omitempty"`
	// Token used to authenticate with the remote backend.
	Token string `hcl:"token,optional" yaml:"token,omitempty"`
	// Hostname of the remote backend. The provider defaults it to
	// app.terraform.io.
	Hostname string `hcl:"hostname,optional" yaml:"hostname,omitempty"`
	// WorkspaceName is the full name of one remote workspace. Conflicts with
	// WorkspacePrefix.
	WorkspaceName string `hcl:"workspace_name,optional" yaml:"workspace_name,omitempty"`
	// WorkspacePrefix selects one or more remote workspaces by name prefix.
	// Conflicts with WorkspaceName.
	WorkspacePrefix string `hcl:"workspace_prefix,optional" yaml:"workspace_prefix,omitempty"`
}

func (a *RemoteBackendArgs) Kind() BackendKind { return Remote }

func (a *RemoteBackendArgs) Validate() error {
	if err := requireString("organization", a.Organization); err != nil {
		return err
	}
	if a.WorkspaceName != "" && a.WorkspacePrefix != "" {
		return fmt.Errorf("%w: only workspace_name or workspace_prefix may be given", ErrConflictingFields)
	}
	if a.WorkspaceName == "" && a.WorkspacePrefix == "" {
		return fmt.Errorf("%w: either workspace_name or workspace_prefix is required", ErrMissingField)
	}
	return nil
}

func (a *RemoteBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "organization", a.Organization)
	setString(p, "token", a.Token)
	setString(p, "hostname", a.Hostname)

	// The workspaces sub-object keeps its nested shape; the provider protocol
	// expects it verbatim rather than flattened.
	ws := make(map[string]cty.Value)
	setString(ws, "workspace_name", a.WorkspaceName)
	setString(ws, "workspace_prefix", a.WorkspacePrefix)
	p["workspaces"] = cty.ObjectVal(ws)

	return p
}
