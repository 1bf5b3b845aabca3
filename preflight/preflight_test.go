// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package preflight

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"

	"github.com/tfref/tfrefgo/state"
)

type stubS3 struct {
	err error
	key string
}

func (s *stubS3) HeadObject(_ context.Context, in *s3v2.HeadObjectInput, _ ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error) {
	s.key = *in.Key
	if s.err != nil {
		return nil, s.err
	}
	return &s3v2.HeadObjectOutput{}, nil
}

type stubRemote struct {
	err error
	org string
	ws  string
}

func (s *stubRemote) ReadWorkspace(_ context.Context, organization, workspace string) error {
	s.org = organization
	s.ws = workspace
	return s.err
}

func TestCheckRejectsInvalidArgs(t *testing.T) {
	c := New()

	f := c.Check(context.Background(), "net", state.S3, &state.S3BackendArgs{Bucket: "states"})

	assert.Equal(t, StatusFailed, f.Status)
	assert.ErrorIs(t, f.Err, state.ErrMissingField)
}

func TestCheckRejectsMismatchedKind(t *testing.T) {
	c := New()

	f := c.Check(context.Background(), "net", state.GCS, &state.LocalBackendArgs{Path: "terraform.tfstate"})

	assert.Equal(t, StatusFailed, f.Status)
	assert.ErrorIs(t, f.Err, state.ErrBackendArgsMismatch)
}

func TestCheckLocal(t *testing.T) {
	dir := t.TempDir()
	statePath := filepath.Join(dir, "terraform.tfstate")
	assert.NoError(t, os.WriteFile(statePath, []byte(`{}`), 0o600))

	c := New()

	f := c.Check(context.Background(), "net", state.Local, &state.LocalBackendArgs{Path: statePath})
	assert.Equal(t, StatusOK, f.Status)
	assert.Equal(t, statePath, f.Detail)

	f = c.Check(context.Background(), "net", state.Local, &state.LocalBackendArgs{
		Path: filepath.Join(dir, "missing.tfstate"),
	})
	assert.Equal(t, StatusFailed, f.Status)
	assert.Error(t, f.Err)

	f = c.Check(context.Background(), "net", state.Local, &state.LocalBackendArgs{Path: dir})
	assert.Equal(t, StatusFailed, f.Status, "a directory is not a state file")
}

func TestCheckS3(t *testing.T) {
	stub := &stubS3{}
	c := New(WithS3Client(stub))

	f := c.Check(context.Background(), "net", state.S3, &state.S3BackendArgs{
		Bucket: "states",
		Key:    "net/terraform.tfstate",
	})

	assert.Equal(t, StatusOK, f.Status)
	assert.Equal(t, "net/terraform.tfstate", stub.key)
	assert.Equal(t, "s3://states/net/terraform.tfstate", f.Detail)
}

func TestCheckS3Failure(t *testing.T) {
	stub := &stubS3{err: errors.New("NotFound")}
	c := New(WithS3Client(stub))

	f := c.Check(context.Background(), "net", state.S3, &state.S3BackendArgs{
		Bucket: "states",
		Key:    "net/terraform.tfstate",
	})

	assert.Equal(t, StatusFailed, f.Status)
	assert.Error(t, f.Err)
}

func TestS3ObjectKey(t *testing.T) {
	tests := []struct {
		name string
		args *state.S3BackendArgs
		want string
	}{
		{
			name: "default workspace",
			args: &state.S3BackendArgs{Bucket: "b", Key: "net/terraform.tfstate"},
			want: "net/terraform.tfstate",
		},
		{
			name: "explicit default workspace",
			args: &state.S3BackendArgs{Bucket: "b", Key: "net/terraform.tfstate", Workspace: "default"},
			want: "net/terraform.tfstate",
		},
		{
			name: "named workspace under default prefix",
			args: &state.S3BackendArgs{Bucket: "b", Key: "net/terraform.tfstate", Workspace: "prod"},
			want: "env:/prod/net/terraform.tfstate",
		},
		{
			name: "named workspace under custom prefix",
			args: &state.S3BackendArgs{
				Bucket: "b", Key: "net/terraform.tfstate",
				Workspace: "prod", WorkspaceKeyPrefix: "workspaces",
			},
			want: "workspaces/prod/net/terraform.tfstate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3ObjectKey(tt.args))
		})
	}
}

func TestCheckRemote(t *testing.T) {
	stub := &stubRemote{}
	c := New(WithRemoteClient(stub))

	f := c.Check(context.Background(), "net", state.Remote, &state.RemoteBackendArgs{
		Organization:    "acme",
		WorkspacePrefix: "app-",
	})

	assert.Equal(t, StatusOK, f.Status)
	assert.Equal(t, "acme", stub.org)
	assert.Equal(t, "app-default", stub.ws)
	assert.Equal(t, "app.terraform.io/acme/app-default", f.Detail)
}

func TestCheckSkipsUnprobedKinds(t *testing.T) {
	c := New()

	f := c.Check(context.Background(), "net", state.Consul, &state.ConsulBackendArgs{
		Path:        "tf/state",
		AccessToken: "tok",
	})

	assert.Equal(t, StatusSkipped, f.Status)
	assert.NoError(t, f.Err)
}
