// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	tfe "github.com/hashicorp/go-tfe"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/tfref/tfrefgo/internal/cacheutil"
	"github.com/tfref/tfrefgo/state"
)

// DefaultHostname is used when the backend configuration does not name a
// host.
const DefaultHostname = "app.terraform.io"

var (
	ErrWrongBackendType  = errors.New("backend type is not remote")
	ErrOrganizationUnset = errors.New("organization is not set")
	ErrWorkspaceUnset    = errors.New("no workspace name or prefix given")
)

// Provider reads remote workspace outputs through the TFE API. The zero
// value is not usable; construct with New.
type Provider struct {
	// environment names the active workspace for prefixed configurations,
	// mirroring the contents of a .terraform/environment file.
	environment string

	newClient func(address, token string) (*tfe.Client, error)
}

// Option configures a Provider.
type Option func(*Provider)

// WithEnvironment sets the workspace suffix appended to workspace_prefix
// configurations. Defaults to "default".
func WithEnvironment(env string) Option {
	return func(p *Provider) { p.environment = env }
}

// New builds a Provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		environment: "default",
		newClient: func(address, token string) (*tfe.Client, error) {
			return tfe.NewClient(&tfe.Config{Address: address, Token: token})
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// backendConfig is the subset of the wire properties this provider acts on.
type backendConfig struct {
	hostname        string
	organization    string
	token           string
	workspaceName   string
	workspacePrefix string
}

// Read resolves the configured workspace, fetches its current root outputs
// through the API, and returns the request properties with the outputs
// object filled in.
func (p *Provider) Read(ctx context.Context, req state.ReadRequest) (map[string]cty.Value, error) {
	cfg, err := parseConfig(req.Properties)
	if err != nil {
		return nil, err
	}

	wsName, err := p.workspaceName(cfg)
	if err != nil {
		return nil, err
	}

	token, err := ResolveToken(cfg.hostname, cfg.token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve token: %w", err)
	}

	client, err := p.newClient("https://"+cfg.hostname, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create TFE client: %w", err)
	}

	workspace, err := client.Workspaces.Read(ctx, cfg.organization, wsName)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspace %s/%s: %w", cfg.organization, wsName, err)
	}

	outputs, err := p.readOutputs(ctx, client, cfg, workspace)
	if err != nil {
		return nil, err
	}

	props := make(map[string]cty.Value, len(req.Properties)+1)
	for k, v := range req.Properties {
		props[k] = v
	}
	props["outputs"] = outputs
	return props, nil
}

// readOutputs returns the workspace's root outputs as a cty object,
// consulting the disk cache keyed by the current state version id.
func (p *Provider) readOutputs(ctx context.Context, client *tfe.Client, cfg *backendConfig, workspace *tfe.Workspace) (cty.Value, error) {
	scope := []string{cfg.hostname, cfg.organization}

	sv, err := client.StateVersions.ReadCurrent(ctx, workspace.ID)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read current state version: %w", err)
	}
	log.Debugf("state version %s (serial %d), created %s", sv.ID, sv.Serial, humanize.Time(sv.CreatedAt))

	if entry, ok := cacheutil.Read(scope, sv.ID); ok {
		log.Debugf("cache hit: %s", entry.Path)
		if v, err := outputsFromJSON(entry.Data); err == nil {
			return v, nil
		}
		log.Warnf("discarding unreadable cache entry %s", entry.Path)
	}

	list, err := client.StateVersionOutputs.ReadCurrent(ctx, workspace.ID)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to read workspace outputs: %w", err)
	}

	raw := make(map[string]any, len(list.Items))
	for _, item := range list.Items {
		raw[item.Name] = item.Value
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to encode outputs: %w", err)
	}
	if err := cacheutil.Write(scope, sv.ID, data); err != nil {
		log.WithError(err).Warn("failed to write outputs to cache")
	}

	return outputsFromJSON(data)
}

// outputsFromJSON decodes a JSON object of output name to value into a cty
// object, letting each value's type be implied by its JSON shape.
func outputsFromJSON(data []byte) (cty.Value, error) {
	ty, err := ctyjson.ImpliedType(data)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to type outputs: %w", err)
	}
	v, err := ctyjson.Unmarshal(data, ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to decode outputs: %w", err)
	}
	return v, nil
}

// parseConfig pulls the remote backend fields out of wire-form properties.
func parseConfig(wire map[string]cty.Value) (*backendConfig, error) {
	props := state.TranslateToInternal(wire)

	if bt := stringProp(props, "backend_type"); bt != string(state.Remote) {
		return nil, fmt.Errorf("%w: got %q", ErrWrongBackendType, bt)
	}

	cfg := &backendConfig{
		hostname:     stringProp(props, "hostname"),
		organization: stringProp(props, "organization"),
		token:        stringProp(props, "token"),
	}
	if cfg.hostname == "" {
		cfg.hostname = DefaultHostname
	}
	if cfg.organization == "" {
		return nil, ErrOrganizationUnset
	}

	if ws, ok := props["workspaces"]; ok && !ws.IsNull() && ws.Type().IsObjectType() {
		nested := ws.AsValueMap()
		cfg.workspaceName = stringProp(nested, "workspace_name")
		cfg.workspacePrefix = stringProp(nested, "workspace_prefix")
	}

	return cfg, nil
}

// workspaceName resolves the full workspace name from either the straight
// name or the prefix plus the active environment.
func (p *Provider) workspaceName(cfg *backendConfig) (string, error) {
	if cfg.workspaceName != "" {
		return cfg.workspaceName, nil
	}
	if cfg.workspacePrefix != "" {
		name := cfg.workspacePrefix + p.environment
		log.Debugf("workspace prefixed name = %s", name)
		return name, nil
	}
	return "", ErrWorkspaceUnset
}

func stringProp(props map[string]cty.Value, name string) string {
	v, ok := props[name]
	if !ok || v.IsNull() || v.Type() != cty.String {
		return ""
	}
	return v.AsString()
}
