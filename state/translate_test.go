// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func TestTranslationTablesAreInverses(t *testing.T) {
	assert.Equal(t, len(snakeToCamel), len(camelToSnake))

	for snake, camel := range snakeToCamel {
		back, ok := camelToSnake[camel]
		assert.True(t, ok, "camel form %q has no reverse entry", camel)
		assert.Equal(t, snake, back, "round trip of %q", snake)
	}
}

func TestToWire(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"backend_type", "backendType"},
		{"shared_credentials_file", "sharedCredentialsFile"},
		{"workspace_prefix", "workspacePrefix"},
		{"outputs", "outputs"},
		// http_auth is identity-mapped in both directions.
		{"http_auth", "http_auth"},
		// Unknown names pass through untouched.
		{"some_future_option", "some_future_option"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToWire(tt.in))
			assert.Equal(t, tt.in, ToInternal(tt.want))
		})
	}
}

func TestTranslateToWireNested(t *testing.T) {
	in := map[string]cty.Value{
		"organization": cty.StringVal("acme"),
		"workspaces": cty.ObjectVal(map[string]cty.Value{
			"workspace_name": cty.StringVal("prod"),
		}),
	}

	wire := TranslateToWire(in)

	assert.Equal(t, cty.StringVal("acme"), wire["organization"])
	ws := wire["workspaces"]
	assert.Equal(t, cty.StringVal("prod"), ws.GetAttr("workspaceName"))

	// And the inverse restores the original shape.
	assert.Equal(t, in, TranslateToInternal(wire))
}

func TestTranslateLeavesValuesAlone(t *testing.T) {
	in := map[string]cty.Value{
		// A value that happens to look like a translatable name must not be
		// touched; only keys are renamed.
		"path": cty.StringVal("workspace_key_prefix"),
		"gzip": cty.True,
	}

	out := TranslateToWire(in)

	assert.Equal(t, cty.StringVal("workspace_key_prefix"), out["path"])
	assert.Equal(t, cty.True, out["gzip"])
}
