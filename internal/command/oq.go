// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfref/tfrefgo/engine"
	"github.com/tfref/tfrefgo/internal/driller"
	"github.com/tfref/tfrefgo/internal/meta"
	"github.com/tfref/tfrefgo/provider/remote"
	"github.com/tfref/tfrefgo/state"
)

// OutputRow is one resolved root output of a reference.
type OutputRow struct {
	ID    string `jsonapi:"primary,output"`
	Ref   string `jsonapi:"attr,ref"`
	Name  string `jsonapi:"attr,name"`
	Value any    `jsonapi:"attr,value"`
}

// newEngine wires the in-process engine with the remote provider. Only the
// remote backend kind has an in-process provider.
func newEngine(cmd *cli.Command) *engine.Engine {
	return engine.New(
		engine.WithProvider(
			state.ResourceToken,
			remote.New(remote.WithEnvironment(cmd.String("env"))),
		),
	)
}

// OqCommandAction is the action handler for the "oq" subcommand. It resolves
// the root outputs of the selected references through the engine and emits
// one row per output. With --path the outputs document of a single reference
// is drilled instead.
func OqCommandAction(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String("path"); path != "" {
		return drillOutputs(ctx, cmd, path)
	}

	runner := &QueryActionRunner[*OutputRow]{
		CommandName:  "oq",
		SchemaType:   reflect.TypeOf(OutputRow{}),
		DefaultAttrs: []string{"ref", "name", "value"},
		FetchFn: func(ctx context.Context, cmd *cli.Command) (
			[]*OutputRow,
			error,
		) {
			defs, err := LoadRefs(cmd)
			if err != nil {
				return nil, err
			}

			eng := newEngine(cmd)
			explicit := cmd.Args().Len() > 0

			var rows []*OutputRow
			for _, def := range defs {
				if def.Kind != state.Remote {
					if explicit {
						return nil, fmt.Errorf("no in-process provider for backend kind %q", def.Kind)
					}
					log.Debugf("skipping %s: no in-process provider for %q", def.Name, def.Kind)
					continue
				}

				ref, err := state.NewReference(ctx, eng, def.Name, def.Kind, def.Args)
				if err != nil {
					return nil, err
				}

				outputs, err := ref.Outputs(ctx)
				if err != nil {
					return nil, err
				}

				for name, value := range outputs {
					v, err := CtyToGo(value)
					if err != nil {
						return nil, err
					}
					rows = append(rows, &OutputRow{
						ID:    def.Name + "." + name,
						Ref:   def.Name,
						Name:  name,
						Value: v,
					})
				}
			}

			return rows, nil
		},
	}
	return runner.Run(ctx, cmd)
}

// drillOutputs resolves a single reference and prints the value at the
// dotted path within its outputs document.
func drillOutputs(ctx context.Context, cmd *cli.Command, path string) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("--path requires exactly one reference name")
	}

	def, err := FindRef(cmd, cmd.Args().First())
	if err != nil {
		return err
	}
	if def.Kind != state.Remote {
		return fmt.Errorf("no in-process provider for backend kind %q", def.Kind)
	}

	ref, err := state.NewReference(ctx, newEngine(cmd), def.Name, def.Kind, def.Args)
	if err != nil {
		return err
	}

	outputs, err := ref.Outputs(ctx)
	if err != nil {
		return err
	}

	doc, err := MarshalCtyObject(outputs)
	if err != nil {
		return err
	}

	result := driller.Driller(string(doc), path)
	if !result.Exists() {
		return fmt.Errorf("no value at path %q in outputs of %q", path, def.Name)
	}

	fmt.Fprintln(os.Stdout, result.String())
	return nil
}

// OqCommandBuilder constructs the cli.Command for "oq", configuring metadata,
// flags, and the associated action/validator.
func OqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "oq",
		Usage:     "output query",
		UsageText: `tfref oq [ref ...] [options]`,
		Examples: [][2]string{
			{"tfref oq --refs refs.yaml", "all outputs of every remote reference"},
			{"tfref oq platform --refs refs.yaml --sort name", "outputs of one reference, sorted"},
			{"tfref oq platform --refs refs.yaml --path vpc.subnets[0].id", "a single value out of a structured output"},
		},
		Flags: []cli.Flag{
			NewEnvironmentFlag("oq", meta.Config.Source),
			&cli.StringFlag{
				Name:  "path",
				Usage: "drill into the outputs document of a single reference",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
		},
		Action: OqCommandAction,
		Meta:   meta,
	}).Build()
}
