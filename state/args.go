// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Argument validation errors. Validate wraps these with the offending field
// names so callers can match with errors.Is.
var (
	ErrNilBackendArgs    = errors.New("backend args are required")
	ErrMissingField      = errors.New("missing required field")
	ErrConflictingFields = errors.New("conflicting fields")
)

// BackendArgs is the closed union of per-backend configuration variants.
// The unexported props method seals the set to this package, so the dispatch
// table in kind.go stays exhaustive.
//
// Field values follow one rule throughout: the zero value means "absent".
// Absent fields are never serialized, which is what lets the external
// provider apply its documented defaulting (environment variables such as
// AWS_DEFAULT_REGION or CONSUL_HTTP_TOKEN). Optional booleans are *bool so
// that unset and false stay distinguishable; use Bool to build them inline.
type BackendArgs interface {
	// Kind returns the backend kind this variant configures.
	Kind() BackendKind

	// Validate reports required-field and mutual-exclusion violations.
	// It is purely structural: no network, no disk, no environment.
	Validate() error

	props() map[string]cty.Value
}

// Bool returns a pointer for the optional boolean fields on argument
// variants.
func Bool(v bool) *bool { return &v }

// Props returns a copy of the flattened option set of args, keyed by
// internal-convention names. The reference's own backend_type field is not
// included; see WireProps for the full provider-boundary document.
func Props(args BackendArgs) map[string]cty.Value {
	if args == nil {
		return nil
	}
	out := make(map[string]cty.Value)
	for k, v := range args.props() {
		out[k] = v
	}
	return out
}

// WireProps validates the kind/args pairing and returns the full property
// document as it crosses the provider boundary: flattened args plus
// backend_type, keyed by wire-convention names.
func WireProps(kind BackendKind, args BackendArgs) (map[string]cty.Value, error) {
	if err := ValidateBackend(kind, args); err != nil {
		return nil, err
	}
	if err := args.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %q backend args: %w", kind, err)
	}
	props := args.props()
	props["backend_type"] = cty.StringVal(string(kind))
	return TranslateToWire(props), nil
}

func requireString(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, field)
	}
	return nil
}

func setString(props map[string]cty.Value, name, value string) {
	if value != "" {
		props[name] = cty.StringVal(value)
	}
}

func setBool(props map[string]cty.Value, name string, value *bool) {
	if value != nil {
		props[name] = cty.BoolVal(*value)
	}
}

func setList(props map[string]cty.Value, name string, values []string) {
	if len(values) == 0 {
		return
	}
	vals := make([]cty.Value, 0, len(values))
	for _, v := range values {
		vals = append(vals, cty.StringVal(v))
	}
	props[name] = cty.ListVal(vals)
}
