// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// ArtifactoryBackendArgs configures a remote state stored in the Artifactory
// backend.
type ArtifactoryBackendArgs struct {
	// Repo is the repository name. Required.
	Repo string `hcl:"repo,optional" yaml:"repo,omitempty"`
	// Subpath within the repository. Required.
	Subpath string `hcl:"subpath,optional" yaml:"subpath,omitempty"`
	// URL is the base Artifactory URL, usually ending in /artifactory.
	// Sourced from ARTIFACTORY_URL if unset.
	URL string `hcl:"url,optional" yaml:"url,omitempty"`
	// Username/Password are sourced from ARTIFACTORY_USERNAME and
	// ARTIFACTORY_PASSWORD when unset.
	Username string `hcl:"username,optional" yaml:"username,omitempty"`
	Password string `hcl:"password,optional" yaml:"password,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *ArtifactoryBackendArgs) Kind() BackendKind { return Artifactory }

func (a *ArtifactoryBackendArgs) Validate() error {
	if err := requireString("repo", a.Repo); err != nil {
		return err
	}
	return requireString("subpath", a.Subpath)
}

func (a *ArtifactoryBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "repo", a.Repo)
	setString(p, "subpath", a.Subpath)
	setString(p, "url", a.URL)
	setString(p, "username", a.Username)
	setString(p, "password", a.Password)
	setString(p, "workspace", a.Workspace)
	return p
}
