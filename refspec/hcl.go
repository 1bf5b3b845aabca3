// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package refspec

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tfref/tfrefgo/state"
)

// refsFile is the top-level HCL shape:
//
//	ref "networking" {
//	  backend = "s3"
//	  config {
//	    bucket = "states"
//	    key    = "net/terraform.tfstate"
//	  }
//	}
type refsFile struct {
	Refs []refBlock `hcl:"ref,block"`
}

type refBlock struct {
	Name    string       `hcl:"name,label"`
	Backend string       `hcl:"backend"`
	Config  *configBlock `hcl:"config,block"`
}

type configBlock struct {
	Remain hcl.Body `hcl:",remain"`
}

func loadHCL(path string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse refs file: %w", diags)
	}

	var root refsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode refs file: %w", diags)
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

		if ref.Config != nil {
			if diags := gohcl.DecodeBody(ref.Config.Remain, nil, args); diags.HasErrors() {
				return nil, fmt.Errorf("reference %q: failed to decode config: %w", ref.Name, diags)
			}
		}

		defs = append(defs, Definition{Name: ref.Name, Kind: kind, Args: args})
	}

	return defs, nil
}
