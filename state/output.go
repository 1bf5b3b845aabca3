// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"context"
	"sync"

	"github.com/zclconf/go-cty/cty"
)

// outputsSlot is a write-once container for a reference's resolved outputs.
// resolve may be called at most once; later calls are ignored. Readers block
// in await until the slot is resolved or their context is done.
type outputsSlot struct {
	once    sync.Once
	done    chan struct{}
	outputs map[string]cty.Value
	err     error
}

func newOutputsSlot() *outputsSlot {
	return &outputsSlot{done: make(chan struct{})}
}

func (s *outputsSlot) resolve(outputs map[string]cty.Value, err error) {
	s.once.Do(func() {
		s.outputs = outputs
		s.err = err
		close(s.done)
	})
}

func (s *outputsSlot) await(ctx context.Context) (map[string]cty.Value, error) {
	select {
	case <-s.done:
		return s.outputs, s.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Output is a deferred value read from a remote state. It can be awaited
// directly or composed with Apply before the underlying read completes.
type Output struct {
	await func(ctx context.Context) (cty.Value, error)
}

// Await blocks until the value is available or ctx is done.
func (o Output) Await(ctx context.Context) (cty.Value, error) {
	return o.await(ctx)
}

// Apply derives a new Output by running fn over the resolved value. fn is
// not invoked until the derived Output is awaited, and never on error.
func (o Output) Apply(fn func(cty.Value) (cty.Value, error)) Output {
	return Output{await: func(ctx context.Context) (cty.Value, error) {
		v, err := o.await(ctx)
		if err != nil {
			return cty.NilVal, err
		}
		return fn(v)
	}}
}
