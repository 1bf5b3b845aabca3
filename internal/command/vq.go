// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tfref/tfrefgo/internal/meta"
	"github.com/tfref/tfrefgo/preflight"
)

// ValidationRow is the per-reference result of a validate query.
type ValidationRow struct {
	ID      string `jsonapi:"primary,validation"`
	Ref     string `jsonapi:"attr,ref"`
	Backend string `jsonapi:"attr,backend"`
	Status  string `jsonapi:"attr,status"`
	Detail  string `jsonapi:"attr,detail"`
}

// VqCommandAction is the action handler for the "vq" subcommand. It checks
// every selected reference in the refs file for a well-formed backend
// kind/argument pairing and, with --preflight, probes the configured state
// location as well.
func VqCommandAction(ctx context.Context, cmd *cli.Command) error {
	runner := &QueryActionRunner[*ValidationRow]{
		CommandName:  "vq",
		SchemaType:   reflect.TypeOf(ValidationRow{}),
		DefaultAttrs: []string{"ref", "backend", "status", "detail"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) (
			[]*ValidationRow,
			error,
		) {
			defs, err := LoadRefs(cmd)
			if err != nil {
				return nil, err
			}

			checker := preflight.New()
			probe := cmd.Bool("preflight")

			rows := make([]*ValidationRow, 0, len(defs))
			for _, def := range defs {
				row := &ValidationRow{
					ID:      def.Name,
					Ref:     def.Name,
					Backend: string(def.Kind),
				}

				if probe {
					finding := checker.Check(ctx, def.Name, def.Kind, def.Args)
					row.Status = string(finding.Status)
					row.Detail = finding.Detail
					if finding.Err != nil {
						row.Detail = finding.Err.Error()
					}
				} else if err := def.Validate(); err != nil {
					row.Status = "failed"
					row.Detail = err.Error()
				} else {
					row.Status = "ok"
				}

				rows = append(rows, row)
			}

			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// VqCommandBuilder constructs the cli.Command for "vq", configuring metadata,
// flags, and the associated action/validator.
func VqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "vq",
		Usage:     "validate references",
		UsageText: `tfref vq [ref ...] [options]`,
		Examples: [][2]string{
			{"tfref vq --refs refs.yaml", "validate every reference"},
			{"tfref vq networking --refs refs.yaml --preflight", "probe one reference's state location"},
			{"tfref vq --refs refs.yaml --filter 'status!=ok'", "only show failures"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "preflight",
				Aliases:     []string{"p"},
				Usage:       "probe the configured state location, not just the arguments",
				HideDefault: true,
			},
		},
		Action: VqCommandAction,
		Meta:   meta,
	}).Build()
}
