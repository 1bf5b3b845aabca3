// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfref/tfrefgo/internal/meta"
	"github.com/tfref/tfrefgo/state"
)

// DqCommandAction is the action handler for the "dq" subcommand. It resolves
// the outputs of two references and prints a structural diff of the two
// documents.
func DqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "dq") {
		return nil
	}

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("dq requires exactly two reference names")
	}

	left, err := resolveOutputsJSON(ctx, cmd, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	right, err := resolveOutputsJSON(ctx, cmd, cmd.Args().Get(1))
	if err != nil {
		return err
	}

	diff, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return fmt.Errorf("failed to diff outputs: %w", err)
	}

	if !diff.Modified() {
		fmt.Fprintln(os.Stdout, "no differences")
		return nil
	}

	var rendered string
	switch cmd.String("output") {
	case "json", "raw":
		rendered, err = formatter.NewDeltaFormatter().Format(diff)
	default:
		var doc map[string]interface{}
		if err := json.Unmarshal(left, &doc); err != nil {
			return fmt.Errorf("failed to unmarshal outputs: %w", err)
		}
		rendered, err = formatter.NewAsciiFormatter(doc, formatter.AsciiFormatterConfig{
			ShowArrayIndex: true,
			Coloring:       cmd.Bool("color"),
		}).Format(diff)
	}
	if err != nil {
		return fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprint(os.Stdout, rendered)
	return nil
}

// resolveOutputsJSON resolves the named reference and returns its outputs
// document as JSON.
func resolveOutputsJSON(ctx context.Context, cmd *cli.Command, name string) ([]byte, error) {
	def, err := FindRef(cmd, name)
	if err != nil {
		return nil, err
	}
	if def.Kind != state.Remote {
		return nil, fmt.Errorf("no in-process provider for backend kind %q", def.Kind)
	}

	ref, err := state.NewReference(ctx, newEngine(cmd), def.Name, def.Kind, def.Args)
	if err != nil {
		return nil, err
	}

	outputs, err := ref.Outputs(ctx)
	if err != nil {
		return nil, err
	}

	return MarshalCtyObject(outputs)
}

// DqCommandBuilder constructs the cli.Command for "dq", configuring metadata,
// flags, and the associated action/validator.
func DqCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "dq",
		Usage:     "diff the outputs of two references",
		UsageText: `tfref dq ref1 ref2 [options]`,
		Examples: [][2]string{
			{"tfref dq staging production --refs refs.yaml", "diff the outputs of two environments"},
			{"tfref dq staging production --refs refs.yaml --output json", "machine-readable delta"},
		},
		Flags: []cli.Flag{
			NewEnvironmentFlag("dq", meta.Config.Source),
		},
		Action: DqCommandAction,
		Meta:   meta,
	}).Build()
}
