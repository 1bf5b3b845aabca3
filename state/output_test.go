// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

func resolved(v cty.Value) Output {
	return Output{await: func(context.Context) (cty.Value, error) { return v, nil }}
}

func TestApply(t *testing.T) {
	bucket := resolved(cty.StringVal("states")).Apply(func(v cty.Value) (cty.Value, error) {
		return cty.StringVal("s3://" + v.AsString()), nil
	})

	v, err := bucket.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cty.StringVal("s3://states"), v)
}

func TestApplyChains(t *testing.T) {
	calls := 0
	out := resolved(cty.NumberIntVal(1)).
		Apply(func(v cty.Value) (cty.Value, error) {
			calls++
			return cty.NumberIntVal(2), nil
		}).
		Apply(func(v cty.Value) (cty.Value, error) {
			calls++
			assert.Equal(t, cty.NumberIntVal(2), v)
			return cty.NumberIntVal(3), nil
		})

	assert.Zero(t, calls, "transforms run lazily, only on await")

	v, err := out.Await(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cty.NumberIntVal(3), v)
	assert.Equal(t, 2, calls)
}

func TestApplySkipsOnError(t *testing.T) {
	failed := errors.New("read failed")
	out := Output{await: func(context.Context) (cty.Value, error) {
		return cty.NilVal, failed
	}}.Apply(func(v cty.Value) (cty.Value, error) {
		t.Fatal("transform must not run on error")
		return v, nil
	})

	_, err := out.Await(context.Background())
	assert.ErrorIs(t, err, failed)
}
