// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package refspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tfref/tfrefgo/state"
)

// yamlFile is the top-level YAML shape:
//
//	refs:
//	  - name: networking
//	    backend: s3
//	    config:
//	      bucket: states
//	      key: net/terraform.tfstate
type yamlFile struct {
	Refs []yamlRef `yaml:"refs"`
}

type yamlRef struct {
	Name    string    `yaml:"name"`
	Backend string    `yaml:"backend"`
	Config  yaml.Node `yaml:"config"`
}

func loadYAML(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read refs file: %w", err)
	}

	var root yamlFile
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse refs file: %w", err)
	}

	defs := make([]Definition, 0, len(root.Refs))
	for _, ref := range root.Refs {
		if ref.Backend == "" {
			return nil, fmt.Errorf("%w: %q", ErrMissingBackend, ref.Name)
		}

		kind := state.BackendKind(ref.Backend)
		args, err := newArgs(kind)
		if err != nil {
			return nil, fmt.Errorf("reference %q: %w", ref.Name, err)
		}

		// The config node decodes straight into the variant; a missing
		// config block leaves the zero variant for Validate to judge.
		if !ref.Config.IsZero() {
			if err := ref.Config.Decode(args); err != nil {
				return nil, fmt.Errorf("reference %q: failed to decode config: %w", ref.Name, err)
			}
		}

		defs = append(defs, Definition{Name: ref.Name, Kind: kind, Args: args})
	}

	return defs, nil
}
