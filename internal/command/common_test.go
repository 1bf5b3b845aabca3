// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
// no-cloc

package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfref/tfrefgo/state"
)

// runWithRefs runs fn as the action of a throwaway command so flag and arg
// parsing behave exactly as they do in production.
func runWithRefs(t *testing.T, args []string, fn func(context.Context, *cli.Command) error) error {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  []cli.Flag{NewRefsFlag()},
		Action: fn,
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestLoadRefsAll(t *testing.T) {
	err := runWithRefs(t, []string{"--refs", "testdata/refs.yaml"},
		func(ctx context.Context, cmd *cli.Command) error {
			defs, err := LoadRefs(cmd)
			assert.NoError(t, err)
			assert.Len(t, defs, 4)
			assert.Equal(t, "networking", defs[0].Name)
			assert.Equal(t, state.S3, defs[0].Kind)
			return nil
		})
	assert.NoError(t, err)
}

func TestLoadRefsSelection(t *testing.T) {
	err := runWithRefs(t, []string{"--refs", "testdata/refs.yaml", "platform", "scratch"},
		func(ctx context.Context, cmd *cli.Command) error {
			defs, err := LoadRefs(cmd)
			assert.NoError(t, err)
			assert.Len(t, defs, 2)
			assert.Equal(t, "platform", defs[0].Name)
			assert.Equal(t, "scratch", defs[1].Name)
			return nil
		})
	assert.NoError(t, err)
}

func TestLoadRefsUnknownName(t *testing.T) {
	err := runWithRefs(t, []string{"--refs", "testdata/refs.yaml", "nope"},
		func(ctx context.Context, cmd *cli.Command) error {
			_, err := LoadRefs(cmd)
			assert.ErrorContains(t, err, `reference "nope" not found`)
			return nil
		})
	assert.NoError(t, err)
}

func TestLoadRefsNoFile(t *testing.T) {
	err := runWithRefs(t, nil,
		func(ctx context.Context, cmd *cli.Command) error {
			_, err := LoadRefs(cmd)
			assert.ErrorIs(t, err, ErrNoRefsFile)
			return nil
		})
	assert.NoError(t, err)
}

func TestFindRef(t *testing.T) {
	err := runWithRefs(t, []string{"--refs", "testdata/refs.yaml"},
		func(ctx context.Context, cmd *cli.Command) error {
			def, err := FindRef(cmd, "platform")
			assert.NoError(t, err)
			assert.Equal(t, state.Remote, def.Kind)

			_, err = FindRef(cmd, "nope")
			assert.ErrorContains(t, err, "not found")
			return nil
		})
	assert.NoError(t, err)
}

func TestMarshalCtyObject(t *testing.T) {
	doc, err := MarshalCtyObject(map[string]cty.Value{
		"vpc_id": cty.StringVal("vpc-123"),
		"count":  cty.NumberIntVal(3),
	})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"vpc_id":"vpc-123","count":3}`, string(doc))
}

func TestCtyToGo(t *testing.T) {
	v, err := CtyToGo(cty.TupleVal([]cty.Value{
		cty.StringVal("a"),
		cty.StringVal("b"),
	}))
	assert.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, v)
}

func TestBuildAttrs(t *testing.T) {
	cmd := &cli.Command{
		Name:  "test",
		Flags: []cli.Flag{&cli.StringFlag{Name: "attrs"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			al := BuildAttrs(cmd, "ref", "name")
			assert.Len(t, al, 3)
			assert.Equal(t, "attributes.ref", al[0].Key)
			assert.Equal(t, "value", al[2].OutputKey)
			return nil
		},
	}
	err := cmd.Run(context.Background(), []string{"test", "--attrs", "value"})
	assert.NoError(t, err)
}

func TestGetMetaMissing(t *testing.T) {
	assert.Zero(t, GetMeta(nil))
	assert.Zero(t, GetMeta(&cli.Command{}))
}
