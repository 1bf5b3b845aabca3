// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfref/tfrefgo/state"
)

// ErrNoProvider is returned through the result channel when a request names
// a resource token no provider was registered for.
var ErrNoProvider = errors.New("no provider registered for token")

// Provider serves reads for a single resource token. Implementations return
// the full result properties in wire form, including the outputs object.
type Provider interface {
	Read(ctx context.Context, req state.ReadRequest) (map[string]cty.Value, error)
}

// Engine routes read requests to providers by resource token. It satisfies
// state.Engine.
type Engine struct {
	providers map[string]Provider
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithProvider registers p to serve requests for token. Registering the same
// token twice keeps the last provider.
func WithProvider(token string, p Provider) Option {
	return func(e *Engine) {
		e.providers[token] = p
	}
}

// New builds an Engine with the given providers.
func New(opts ...Option) *Engine {
	e := &Engine{providers: make(map[string]Provider)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Read dispatches req to the provider registered for its token and returns
// immediately. The returned channel delivers exactly one result and is then
// closed.
func (e *Engine) Read(ctx context.Context, req state.ReadRequest) <-chan state.ReadResult {
	out := make(chan state.ReadResult, 1)

	p, ok := e.providers[req.Token]
	if !ok {
		out <- state.ReadResult{Err: fmt.Errorf("%w: %q", ErrNoProvider, req.Token)}
		close(out)
		return out
	}

	go func() {
		defer close(out)
		log.Debugf("reading %s (%s)", req.Name, req.Token)
		props, err := p.Read(ctx, req)
		if err != nil {
			log.WithError(err).Errorf("read failed for %s", req.Name)
			out <- state.ReadResult{Err: fmt.Errorf("failed to read %s: %w", req.Name, err)}
			return
		}
		out <- state.ReadResult{Properties: props}
	}()
	return out
}
