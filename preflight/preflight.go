// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package preflight

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"

	"github.com/tfref/tfrefgo/state"
)

// Status classifies the outcome of a single check.
type Status string

const (
	// StatusOK means the configured state location was reachable.
	StatusOK Status = "ok"
	// StatusSkipped means no check is implemented for the backend kind.
	StatusSkipped Status = "skipped"
	// StatusFailed means the check ran and the state was not reachable.
	StatusFailed Status = "failed"
)

// Finding is the result of checking one reference's backend configuration.
type Finding struct {
	Name   string
	Kind   state.BackendKind
	Status Status
	// Detail describes what was checked, for example the object URL or file
	// path.
	Detail string
	Err    error
}

// Checker runs preflight checks. The zero value is usable.
type Checker struct {
	s3     s3HeadAPI
	remote remoteAPI
}

// Option configures a Checker.
type Option func(*Checker)

// New builds a Checker.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check validates args structurally and then probes the backend for the
// named reference. Backend kinds without a probe return StatusSkipped.
func (c *Checker) Check(ctx context.Context, name string, kind state.BackendKind, args state.BackendArgs) Finding {
	f := Finding{Name: name, Kind: kind}

	if err := state.ValidateBackend(kind, args); err != nil {
		f.Status = StatusFailed
		f.Err = err
		return f
	}
	if err := args.Validate(); err != nil {
		f.Status = StatusFailed
		f.Err = err
		return f
	}

	switch a := args.(type) {
	case *state.LocalBackendArgs:
		return c.checkLocal(f, a)
	case *state.S3BackendArgs:
		return c.checkS3(ctx, f, a)
	case *state.RemoteBackendArgs:
		return c.checkRemote(ctx, f, a)
	default:
		log.Debugf("no preflight check for backend kind %q", kind)
		f.Status = StatusSkipped
		f.Detail = fmt.Sprintf("no check implemented for %q", kind)
		return f
	}
}

func (c *Checker) checkLocal(f Finding, args *state.LocalBackendArgs) Finding {
	f.Detail = args.Path

	info, err := os.Stat(args.Path)
	if err != nil {
		f.Status = StatusFailed
		f.Err = fmt.Errorf("failed to stat state file: %w", err)
		return f
	}
	if info.IsDir() {
		f.Status = StatusFailed
		f.Err = fmt.Errorf("state path %s is a directory", args.Path)
		return f
	}

	f.Status = StatusOK
	return f
}
