// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"context"
	"errors"

	"github.com/zclconf/go-cty/cty"
)

// ResourceToken identifies the remote state reference resource to the
// engine. There is exactly one resource shape regardless of backend.
const ResourceToken = "terraform:state:RemoteStateReference"

var (
	// ErrMissingResourceName is returned when a reference is created
	// without a name.
	ErrMissingResourceName = errors.New("resource name is required")

	// ErrNilEngine is returned when a reference is created without an
	// engine to read through.
	ErrNilEngine = errors.New("engine is required")
)

// ReadRequest asks an engine to read the outputs behind a remote state.
// Properties carry the backend configuration in wire form.
type ReadRequest struct {
	Token      string
	Name       string
	ID         string
	Properties map[string]cty.Value
}

// ReadResult is the engine's answer to a ReadRequest. Properties are in
// wire form and include the resolved outputs under the "outputs" key.
type ReadResult struct {
	Properties map[string]cty.Value
	Err        error
}

// Engine performs reads on behalf of references. Read returns immediately
// with a channel that delivers exactly one result.
type Engine interface {
	Read(ctx context.Context, req ReadRequest) <-chan ReadResult
}

// Reference is a handle on the outputs of a Terraform state stored in one
// of the supported backends. Outputs resolve asynchronously; GetOutput can
// be called before the read completes.
type Reference struct {
	name string
	kind BackendKind
	prop map[string]cty.Value
	slot *outputsSlot
}

// NewReference validates args against the declared backend kind and starts
// a read through eng. The reference's ID is always its name. The returned
// Reference is usable immediately; its outputs resolve in the background.
func NewReference(ctx context.Context, eng Engine, name string, kind BackendKind, args BackendArgs) (*Reference, error) {
	if name == "" {
		return nil, ErrMissingResourceName
	}
	if eng == nil {
		return nil, ErrNilEngine
	}
	if args == nil {
		return nil, ErrNilBackendArgs
	}

	wire, err := WireProps(kind, args)
	if err != nil {
		return nil, err
	}

	r := &Reference{
		name: name,
		kind: kind,
		prop: Props(args),
		slot: newOutputsSlot(),
	}

	results := eng.Read(ctx, ReadRequest{
		Token:      ResourceToken,
		Name:       name,
		ID:         name,
		Properties: wire,
	})
	go func() {
		res, ok := <-results
		if !ok {
			r.slot.resolve(nil, errors.New("engine closed read channel without a result"))
			return
		}
		if res.Err != nil {
			r.slot.resolve(nil, res.Err)
			return
		}
		r.slot.resolve(extractOutputs(res.Properties), nil)
	}()
	return r, nil
}

// extractOutputs pulls the outputs object out of a wire-form result and
// translates everything back to internal naming. A result without an
// outputs object yields an empty map.
func extractOutputs(wire map[string]cty.Value) map[string]cty.Value {
	props := TranslateToInternal(wire)
	v, ok := props["outputs"]
	if !ok || v.IsNull() || !v.IsKnown() {
		return map[string]cty.Value{}
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return map[string]cty.Value{}
	}
	if v.LengthInt() == 0 {
		return map[string]cty.Value{}
	}
	return v.AsValueMap()
}

// Name returns the reference's resource name, which is also its ID.
func (r *Reference) Name() string { return r.name }

// Kind returns the backend kind the reference was created with.
func (r *Reference) Kind() BackendKind { return r.kind }

// Props returns a copy of the backend configuration in internal naming,
// without the backend_type entry.
func (r *Reference) Props() map[string]cty.Value {
	out := make(map[string]cty.Value, len(r.prop))
	for k, v := range r.prop {
		out[k] = v
	}
	return out
}

// Outputs blocks until the state has been read and returns every root
// output. The map must not be mutated by the caller.
func (r *Reference) Outputs(ctx context.Context) (map[string]cty.Value, error) {
	return r.slot.await(ctx)
}

// GetOutput returns a deferred handle on a single root output. A name that
// is not present in the state resolves to cty.NilVal rather than an error,
// so lookups compose without existence checks.
func (r *Reference) GetOutput(name string) Output {
	return Output{await: func(ctx context.Context) (cty.Value, error) {
		outputs, err := r.slot.await(ctx)
		if err != nil {
			return cty.NilVal, err
		}
		v, ok := outputs[name]
		if !ok {
			return cty.NilVal, nil
		}
		return v, nil
	}}
}
