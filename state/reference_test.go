// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"
)

// fakeEngine records the request it received and answers with a canned
// result when release is closed (immediately when release is nil).
type fakeEngine struct {
	req     ReadRequest
	result  ReadResult
	release chan struct{}
}

func (e *fakeEngine) Read(ctx context.Context, req ReadRequest) <-chan ReadResult {
	e.req = req
	out := make(chan ReadResult, 1)
	go func() {
		if e.release != nil {
			<-e.release
		}
		out <- e.result
	}()
	return out
}

func outputsResult(outputs map[string]cty.Value) ReadResult {
	return ReadResult{Properties: map[string]cty.Value{
		"backendType": cty.StringVal("local"),
		"outputs":     cty.ObjectVal(outputs),
	}}
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestNewReferenceValidation(t *testing.T) {
	eng := &fakeEngine{result: outputsResult(nil)}
	args := &LocalBackendArgs{Path: "terraform.tfstate"}

	tests := []struct {
		name    string
		run     func() (*Reference, error)
		wantErr error
	}{
		{
			name:    "empty name",
			run:     func() (*Reference, error) { return NewReference(context.Background(), eng, "", Local, args) },
			wantErr: ErrMissingResourceName,
		},
		{
			name:    "nil engine",
			run:     func() (*Reference, error) { return NewReference(context.Background(), nil, "net", Local, args) },
			wantErr: ErrNilEngine,
		},
		{
			name:    "nil args",
			run:     func() (*Reference, error) { return NewReference(context.Background(), eng, "net", Local, nil) },
			wantErr: ErrNilBackendArgs,
		},
		{
			name: "invalid args",
			run: func() (*Reference, error) {
				return NewReference(context.Background(), eng, "net", Local, &LocalBackendArgs{})
			},
			wantErr: ErrMissingField,
		},
		{
			name: "args for a different kind",
			run: func() (*Reference, error) {
				return NewReference(context.Background(), eng, "net", S3, args)
			},
			wantErr: ErrBackendArgsMismatch,
		},
		{
			name: "unknown kind",
			run: func() (*Reference, error) {
				return NewReference(context.Background(), eng, "net", BackendKind("carrier-pigeon"), args)
			},
			wantErr: ErrUnknownBackendKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := tt.run()
			assert.Nil(t, ref)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewReferenceReadRequest(t *testing.T) {
	eng := &fakeEngine{result: outputsResult(nil)}

	ref, err := NewReference(testCtx(t), eng, "networking", S3, &S3BackendArgs{
		Bucket:  "states",
		Key:     "net/terraform.tfstate",
		RoleArn: "arn:aws:iam::123456789012:role/reader",
	})
	assert.NoError(t, err)

	assert.Equal(t, ResourceToken, eng.req.Token)
	assert.Equal(t, "networking", eng.req.Name)
	assert.Equal(t, "networking", eng.req.ID, "ID is forced to the resource name")
	assert.Equal(t, cty.StringVal("s3"), eng.req.Properties["backendType"])
	assert.Equal(t, cty.StringVal("arn:aws:iam::123456789012:role/reader"), eng.req.Properties["roleArn"])
	assert.NotContains(t, eng.req.Properties, "role_arn")

	assert.Equal(t, "networking", ref.Name())
	assert.Equal(t, S3, ref.Kind())
}

func TestGetOutputBeforeResolution(t *testing.T) {
	release := make(chan struct{})
	eng := &fakeEngine{
		result:  outputsResult(map[string]cty.Value{"x": cty.NumberIntVal(42)}),
		release: release,
	}

	ref, err := NewReference(testCtx(t), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	// Both handles are taken before the engine responds.
	first := ref.GetOutput("x")
	second := ref.GetOutput("x")
	close(release)

	v1, err := first.Await(testCtx(t))
	assert.NoError(t, err)
	v2, err := second.Await(testCtx(t))
	assert.NoError(t, err)
	assert.Equal(t, cty.NumberIntVal(42), v1)
	assert.Equal(t, cty.NumberIntVal(42), v2)
}

func TestGetOutputMissingKey(t *testing.T) {
	eng := &fakeEngine{result: outputsResult(map[string]cty.Value{"present": cty.True})}

	ref, err := NewReference(testCtx(t), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	v, err := ref.GetOutput("absent").Await(testCtx(t))
	assert.NoError(t, err, "a missing output is an absent value, not an error")
	assert.Equal(t, cty.NilVal, v)
}

func TestOutputs(t *testing.T) {
	eng := &fakeEngine{result: outputsResult(map[string]cty.Value{
		"vpc_id": cty.StringVal("vpc-123"),
		"count":  cty.NumberIntVal(3),
	})}

	ref, err := NewReference(testCtx(t), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	outputs, err := ref.Outputs(testCtx(t))
	assert.NoError(t, err)
	assert.Equal(t, map[string]cty.Value{
		"vpc_id": cty.StringVal("vpc-123"),
		"count":  cty.NumberIntVal(3),
	}, outputs)
}

func TestOutputsEmptyWhenAbsent(t *testing.T) {
	eng := &fakeEngine{result: ReadResult{Properties: map[string]cty.Value{
		"backendType": cty.StringVal("local"),
	}}}

	ref, err := NewReference(testCtx(t), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	outputs, err := ref.Outputs(testCtx(t))
	assert.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestEngineErrorPropagates(t *testing.T) {
	readErr := errors.New("workspace not found")
	eng := &fakeEngine{result: ReadResult{Err: readErr}}

	ref, err := NewReference(testCtx(t), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err, "construction succeeds; the failure surfaces on await")

	_, err = ref.Outputs(testCtx(t))
	assert.ErrorIs(t, err, readErr)

	_, err = ref.GetOutput("x").Await(testCtx(t))
	assert.ErrorIs(t, err, readErr)
}

func TestAwaitHonorsContext(t *testing.T) {
	eng := &fakeEngine{
		result:  outputsResult(nil),
		release: make(chan struct{}), // never released
	}

	ref, err := NewReference(context.Background(), eng, "net", Local, &LocalBackendArgs{Path: "terraform.tfstate"})
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = ref.Outputs(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
