// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfref/tfrefgo/state"
)

func remoteWire(t *testing.T, args *state.RemoteBackendArgs) map[string]cty.Value {
	t.Helper()
	wire, err := state.WireProps(state.Remote, args)
	assert.NoError(t, err)
	return wire
}

func TestParseConfig(t *testing.T) {
	wire := remoteWire(t, &state.RemoteBackendArgs{
		Organization:  "acme",
		Hostname:      "tfe.example.com",
		Token:         "cfg-token",
		WorkspaceName: "prod",
	})

	cfg, err := parseConfig(wire)
	assert.NoError(t, err)
	assert.Equal(t, "tfe.example.com", cfg.hostname)
	assert.Equal(t, "acme", cfg.organization)
	assert.Equal(t, "cfg-token", cfg.token)
	assert.Equal(t, "prod", cfg.workspaceName)
	assert.Empty(t, cfg.workspacePrefix)
}

func TestParseConfigDefaultHostname(t *testing.T) {
	wire := remoteWire(t, &state.RemoteBackendArgs{
		Organization:  "acme",
		WorkspaceName: "prod",
	})

	cfg, err := parseConfig(wire)
	assert.NoError(t, err)
	assert.Equal(t, DefaultHostname, cfg.hostname)
}

func TestParseConfigWrongBackendType(t *testing.T) {
	wire, err := state.WireProps(state.Local, &state.LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	_, err = parseConfig(wire)
	assert.ErrorIs(t, err, ErrWrongBackendType)
}

func TestParseConfigMissingOrganization(t *testing.T) {
	_, err := parseConfig(map[string]cty.Value{
		"backendType": cty.StringVal("remote"),
	})
	assert.ErrorIs(t, err, ErrOrganizationUnset)
}

func TestWorkspaceName(t *testing.T) {
	tests := []struct {
		name    string
		p       *Provider
		cfg     *backendConfig
		want    string
		wantErr error
	}{
		{
			name: "straight name",
			p:    New(),
			cfg:  &backendConfig{workspaceName: "prod"},
			want: "prod",
		},
		{
			name: "prefix with default environment",
			p:    New(),
			cfg:  &backendConfig{workspacePrefix: "app-"},
			want: "app-default",
		},
		{
			name: "prefix with explicit environment",
			p:    New(WithEnvironment("staging")),
			cfg:  &backendConfig{workspacePrefix: "app-"},
			want: "app-staging",
		},
		{
			name:    "neither",
			p:       New(),
			cfg:     &backendConfig{},
			wantErr: ErrWorkspaceUnset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.p.workspaceName(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutputsFromJSON(t *testing.T) {
	v, err := outputsFromJSON([]byte(`{"vpc_id": "vpc-123", "count": 3, "flags": [true, false]}`))
	assert.NoError(t, err)

	assert.Equal(t, cty.StringVal("vpc-123"), v.GetAttr("vpc_id"))
	assert.True(t, cty.NumberIntVal(3).RawEquals(v.GetAttr("count")))
	assert.Equal(t, cty.TupleVal([]cty.Value{cty.True, cty.False}), v.GetAttr("flags"))
}

func TestOutputsFromJSONEmpty(t *testing.T) {
	v, err := outputsFromJSON([]byte(`{}`))
	assert.NoError(t, err)
	assert.Equal(t, cty.EmptyObjectVal, v)
}
