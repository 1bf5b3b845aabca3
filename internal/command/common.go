// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"reflect"

	"github.com/apex/log"
	"github.com/hashicorp/jsonapi"
	"github.com/urfave/cli/v3"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/tfref/tfrefgo/internal/attrs"
	"github.com/tfref/tfrefgo/internal/meta"
	"github.com/tfref/tfrefgo/internal/output"
	"github.com/tfref/tfrefgo/refspec"
)

var ErrNoRefsFile = errors.New("no refs file specified")

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr tfref <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "tfref", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// DumpSchemaIfRequested prints the JSON schema for the provided type when
// --schema is set, and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema("", t)
		return true
	}
	return false
}

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// EmitJSONAPISlice marshals a slice as JSONAPI and passes it to the common
// output routine.
func EmitJSONAPISlice(results any, al attrs.AttrList, cmd *cli.Command) error {
	var raw bytes.Buffer
	if err := jsonapi.MarshalPayload(&raw, results); err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	output.SliceDiceSpit(raw, al, cmd, "data", os.Stdout, nil)
	return nil
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// LoadRefs parses the refs file named by --refs (or the meta fallback) and
// returns the definitions selected by the command's positional args. With no
// positional args every definition is returned.
func LoadRefs(cmd *cli.Command) ([]refspec.Definition, error) {
	path := cmd.String("refs")
	if path == "" {
		path = GetMeta(cmd).RefsFile
	}
	if path == "" {
		return nil, ErrNoRefsFile
	}

	defs, err := refspec.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load refs file %s: %w", path, err)
	}
	log.Debugf("loaded %d definitions from %s", len(defs), path)

	names := cmd.Args().Slice()
	if len(names) == 0 {
		return defs, nil
	}

	byName := make(map[string]refspec.Definition, len(defs))
	for _, def := range defs {
		byName[def.Name] = def
	}

	selected := make([]refspec.Definition, 0, len(names))
	for _, name := range names {
		def, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("reference %q not found in %s", name, path)
		}
		selected = append(selected, def)
	}

	return selected, nil
}

// FindRef returns the single definition named by name from the refs file.
func FindRef(cmd *cli.Command, name string) (refspec.Definition, error) {
	path := cmd.String("refs")
	if path == "" {
		path = GetMeta(cmd).RefsFile
	}
	if path == "" {
		return refspec.Definition{}, ErrNoRefsFile
	}

	defs, err := refspec.Parse(path)
	if err != nil {
		return refspec.Definition{}, fmt.Errorf("failed to load refs file %s: %w", path, err)
	}

	for _, def := range defs {
		if def.Name == name {
			return def, nil
		}
	}

	return refspec.Definition{}, fmt.Errorf("reference %q not found in %s", name, path)
}

// MarshalCtyObject renders a property document as a JSON object, one member
// per property.
func MarshalCtyObject(props map[string]cty.Value) (json.RawMessage, error) {
	doc := make(map[string]json.RawMessage, len(props))
	for name, value := range props {
		b, err := ctyjson.Marshal(value, value.Type())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", name, err)
		}
		doc[name] = b
	}
	return json.Marshal(doc)
}

// CtyToGo converts a single cty value to its plain Go representation by way
// of its JSON form.
func CtyToGo(value cty.Value) (any, error) {
	b, err := ctyjson.Marshal(value, value.Type())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}
	return out, nil
}

// QueryCommandBuilder constructs a cli.Command for the query subcommands
// (vq, pq, oq, dq) using a consistent pattern. It accepts the command name,
// usage text, optional UsageText, custom flags, the action handler, and
// meta. The builder automatically wires metadata, adds tldr/schema/refs
// flags, applies global flags, and sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Examples  [][2]string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: append(qcb.Flags, append([]cli.Flag{
			examplesFlag,
			tldrFlag,
			schemaFlag,
			NewRefsFlag(qcb.Name, qcb.Meta.Config.Source),
		}, NewGlobalFlags(qcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Bool("examples") {
				output.DumpExamples(ctx, c, qcb.Examples)
				return nil
			}
			return qcb.Action(ctx, c)
		},
	}
}

// QueryActionRunner[T] encapsulates the common query action pattern. It
// handles GetMeta, short-circuit checks, BuildAttrs, schema dumping, and
// output emission, with the data fetching provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	attrs := BuildAttrs(cmd, qar.DefaultAttrs...)
	log.Debugf("attrs: %v", attrs)

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	if err := EmitJSONAPISlice(results, attrs, cmd); err != nil {
		return err
	}
	return nil
}
