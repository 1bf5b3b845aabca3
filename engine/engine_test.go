// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/tfref/tfrefgo/state"
)

type stubProvider struct {
	props map[string]cty.Value
	err   error
	got   state.ReadRequest
}

func (p *stubProvider) Read(_ context.Context, req state.ReadRequest) (map[string]cty.Value, error) {
	p.got = req
	return p.props, p.err
}

func recv(t *testing.T, ch <-chan state.ReadResult) state.ReadResult {
	t.Helper()
	select {
	case res := <-ch:
		return res
	case <-time.After(5 * time.Second):
		t.Fatal("no result delivered")
		return state.ReadResult{}
	}
}

func TestReadDispatchesByToken(t *testing.T) {
	p := &stubProvider{props: map[string]cty.Value{
		"backendType": cty.StringVal("local"),
		"outputs":     cty.EmptyObjectVal,
	}}
	e := New(WithProvider(state.ResourceToken, p))

	req := state.ReadRequest{
		Token: state.ResourceToken,
		Name:  "net",
		ID:    "net",
	}
	res := recv(t, e.Read(context.Background(), req))

	assert.NoError(t, res.Err)
	assert.Equal(t, p.props, res.Properties)
	assert.Equal(t, req, p.got)
}

func TestReadUnknownToken(t *testing.T) {
	e := New()

	res := recv(t, e.Read(context.Background(), state.ReadRequest{Token: "terraform:state:Other"}))

	assert.ErrorIs(t, res.Err, ErrNoProvider)
}

func TestReadProviderError(t *testing.T) {
	boom := errors.New("workspace not found")
	e := New(WithProvider(state.ResourceToken, &stubProvider{err: boom}))

	res := recv(t, e.Read(context.Background(), state.ReadRequest{
		Token: state.ResourceToken,
		Name:  "net",
	}))

	assert.ErrorIs(t, res.Err, boom)
	assert.Nil(t, res.Properties)
}

func TestReadChannelCloses(t *testing.T) {
	e := New(WithProvider(state.ResourceToken, &stubProvider{}))

	ch := e.Read(context.Background(), state.ReadRequest{Token: state.ResourceToken})
	recv(t, ch)

	_, open := <-ch
	assert.False(t, open, "channel closes after the single result")
}

func TestEngineSatisfiesStateContract(t *testing.T) {
	var _ state.Engine = New()
}
