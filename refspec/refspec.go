// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package refspec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tfref/tfrefgo/state"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported refs file format")
	ErrDuplicateName     = errors.New("duplicate reference name")
	ErrMissingBackend    = errors.New("reference has no backend kind")
)

// Definition is one reference declared in a refs file.
type Definition struct {
	Name string
	Kind state.BackendKind
	Args state.BackendArgs
}

// Validate checks the kind/args pairing and the argument invariants of a
// single definition.
func (d Definition) Validate() error {
	if err := state.ValidateBackend(d.Kind, d.Args); err != nil {
		return err
	}
	return d.Args.Validate()
}

// Parse reads every definition from the file at path, dispatching on the
// extension: .hcl for HCL, .yaml/.yml for YAML. Names must be unique, but
// the arguments themselves are not validated. Callers that want structural
// validation use Load, or Validate per definition.
func Parse(path string) ([]Definition, error) {
	var (
		defs []Definition
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		defs, err = loadHCL(path)
	case ".yaml", ".yml":
		defs, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, def.Name)
		}
		seen[def.Name] = true
	}

	return defs, nil
}

// Load parses the file at path and validates every definition.
func Load(path string) ([]Definition, error) {
	defs, err := Parse(path)
	if err != nil {
		return nil, err
	}

	for _, def := range defs {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("reference %q: %w", def.Name, err)
		}
	}

	return defs, nil
}

// newArgs returns the empty argument variant for kind.
func newArgs(kind state.BackendKind) (state.BackendArgs, error) {
	switch kind {
	case state.Artifactory:
		return &state.ArtifactoryBackendArgs{}, nil
	case state.AzureRM:
		return &state.AzureRMBackendArgs{}, nil
	case state.Consul:
		return &state.ConsulBackendArgs{}, nil
	case state.EtcdV2:
		return &state.EtcdV2BackendArgs{}, nil
	case state.EtcdV3:
		return &state.EtcdV3BackendArgs{}, nil
	case state.GCS:
		return &state.GCSBackendArgs{}, nil
	case state.HTTP:
		return &state.HTTPBackendArgs{}, nil
	case state.Local:
		return &state.LocalBackendArgs{}, nil
	case state.Manta:
		return &state.MantaBackendArgs{}, nil
	case state.Postgres:
		return &state.PostgresBackendArgs{}, nil
	case state.Remote:
		return &state.RemoteBackendArgs{}, nil
	case state.S3:
		return &state.S3BackendArgs{}, nil
	case state.Swift:
		return &state.SwiftBackendArgs{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", state.ErrUnknownBackendKind, kind)
	}
}
