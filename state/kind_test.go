// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKinds(t *testing.T) {
	kinds := Kinds()

	assert.Len(t, kinds, 13)
	assert.True(t, sort.SliceIsSorted(kinds, func(i, j int) bool {
		return kinds[i] < kinds[j]
	}), "Kinds should be sorted")
	assert.Contains(t, kinds, S3)
	assert.Contains(t, kinds, Remote)
	assert.Contains(t, kinds, EtcdV2)
}

func TestValidateBackendMatchingVariants(t *testing.T) {
	tests := []struct {
		kind BackendKind
		args BackendArgs
	}{
		{Artifactory, &ArtifactoryBackendArgs{}},
		{AzureRM, &AzureRMBackendArgs{}},
		{Consul, &ConsulBackendArgs{}},
		{EtcdV2, &EtcdV2BackendArgs{}},
		{EtcdV3, &EtcdV3BackendArgs{}},
		{GCS, &GCSBackendArgs{}},
		{HTTP, &HTTPBackendArgs{}},
		{Local, &LocalBackendArgs{}},
		{Manta, &MantaBackendArgs{}},
		{Postgres, &PostgresBackendArgs{}},
		{Remote, &RemoteBackendArgs{}},
		{S3, &S3BackendArgs{}},
		{Swift, &SwiftBackendArgs{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.NoError(t, ValidateBackend(tt.kind, tt.args))
			assert.Equal(t, tt.kind, tt.args.Kind())
		})
	}
}

func TestValidateBackendMismatch(t *testing.T) {
	tests := []struct {
		name string
		kind BackendKind
		args BackendArgs
	}{
		{"s3 kind with local args", S3, &LocalBackendArgs{Path: "terraform.tfstate"}},
		{"etcd kind with etcdv3 args", EtcdV2, &EtcdV3BackendArgs{Endpoints: []string{"http://127.0.0.1:2379"}}},
		{"remote kind with gcs args", Remote, &GCSBackendArgs{Bucket: "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBackend(tt.kind, tt.args)
			assert.ErrorIs(t, err, ErrBackendArgsMismatch)
		})
	}
}

func TestValidateBackendUnknownKind(t *testing.T) {
	err := ValidateBackend(BackendKind("cloudfiles"), &LocalBackendArgs{})
	assert.ErrorIs(t, err, ErrUnknownBackendKind)
}

func TestValidateBackendNilArgs(t *testing.T) {
	err := ValidateBackend(S3, nil)
	assert.ErrorIs(t, err, ErrBackendArgsMismatch)
}
