// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tfref/tfrefgo/internal/meta"
	"github.com/tfref/tfrefgo/state"
)

// PropsRow carries the wire-shape property document of one reference: the
// camelCase properties that cross the provider boundary, backendType
// included.
type PropsRow struct {
	ID      string         `jsonapi:"primary,props"`
	Ref     string         `jsonapi:"attr,ref"`
	Backend string         `jsonapi:"attr,backend"`
	Props   map[string]any `jsonapi:"attr,props"`
}

// PqCommandAction is the action handler for the "pq" subcommand. It emits
// the translated property document for every selected reference.
func PqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[*PropsRow]{
		CommandName:  "pq",
		SchemaType:   reflect.TypeOf(PropsRow{}),
		DefaultAttrs: []string{"ref", "backend", "props"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) (
			[]*PropsRow,
			error,
		) {
			defs, err := LoadRefs(cmd)
			if err != nil {
				return nil, err
			}

			rows := make([]*PropsRow, 0, len(defs))
			for _, def := range defs {
				wire, err := state.WireProps(def.Kind, def.Args)
				if err != nil {
					return nil, err
				}

				props := make(map[string]any, len(wire))
				for name, value := range wire {
					v, err := CtyToGo(value)
					if err != nil {
						return nil, err
					}
					props[name] = v
				}

				rows = append(rows, &PropsRow{
					ID:      def.Name,
					Ref:     def.Name,
					Backend: string(def.Kind),
					Props:   props,
				})
			}

			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// PqCommandBuilder constructs the cli.Command for "pq", configuring metadata,
// flags, and the associated action/validator.
func PqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "pq",
		Usage:     "property document query",
		UsageText: `tfref pq [ref ...] [options]`,
		Examples: [][2]string{
			{"tfref pq --refs refs.yaml --output json", "property documents for every reference"},
			{"tfref pq networking --refs refs.yaml --output yaml", "just the networking reference"},
		},
		Action: PqCommandAction,
		Meta:   meta,
	}).Build()
}
