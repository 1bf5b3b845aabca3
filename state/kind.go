// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import (
	"errors"
	"fmt"
	"sort"
)

// BackendKind identifies which backend's argument variant and provider logic
// apply to a Reference. The set of kinds is closed; see Kinds.
type BackendKind string

const (
	Artifactory BackendKind = "artifactory"
	AzureRM     BackendKind = "azurerm"
	Consul      BackendKind = "consul"
	EtcdV2      BackendKind = "etcd"
	EtcdV3      BackendKind = "etcdv3"
	GCS         BackendKind = "gcs"
	HTTP        BackendKind = "http"
	Local       BackendKind = "local"
	Manta       BackendKind = "manta"
	Postgres    BackendKind = "postgres"
	Remote      BackendKind = "remote"
	S3          BackendKind = "s3"
	Swift       BackendKind = "swift"
)

// Sentinel errors for backend dispatch. Callers can detect specific
// conditions via errors.Is while keeping messages consistent.
var (
	ErrUnknownBackendKind  = errors.New("unknown backend kind")
	ErrBackendArgsMismatch = errors.New("backend args do not match backend kind")
)

type registryEntry struct {
	// want is the variant name reported when the pairing is wrong.
	want  string
	match func(BackendArgs) bool
}

// registry is the closed dispatch table from kind to its expected argument
// variant. Every kind must appear here; an unregistered kind is always a hard
// error, never a default.
var registry = map[BackendKind]registryEntry{
	Artifactory: {"ArtifactoryBackendArgs", func(a BackendArgs) bool { _, ok := a.(*ArtifactoryBackendArgs); return ok }},
	AzureRM:     {"AzureRMBackendArgs", func(a BackendArgs) bool { _, ok := a.(*AzureRMBackendArgs); return ok }},
	Consul:      {"ConsulBackendArgs", func(a BackendArgs) bool { _, ok := a.(*ConsulBackendArgs); return ok }},
	EtcdV2:      {"EtcdV2BackendArgs", func(a BackendArgs) bool { _, ok := a.(*EtcdV2BackendArgs); return ok }},
	EtcdV3:      {"EtcdV3BackendArgs", func(a BackendArgs) bool { _, ok := a.(*EtcdV3BackendArgs); return ok }},
	GCS:         {"GCSBackendArgs", func(a BackendArgs) bool { _, ok := a.(*GCSBackendArgs); return ok }},
	HTTP:        {"HTTPBackendArgs", func(a BackendArgs) bool { _, ok := a.(*HTTPBackendArgs); return ok }},
	Local:       {"LocalBackendArgs", func(a BackendArgs) bool { _, ok := a.(*LocalBackendArgs); return ok }},
	Manta:       {"MantaBackendArgs", func(a BackendArgs) bool { _, ok := a.(*MantaBackendArgs); return ok }},
	Postgres:    {"PostgresBackendArgs", func(a BackendArgs) bool { _, ok := a.(*PostgresBackendArgs); return ok }},
	Remote:      {"RemoteBackendArgs", func(a BackendArgs) bool { _, ok := a.(*RemoteBackendArgs); return ok }},
	S3:          {"S3BackendArgs", func(a BackendArgs) bool { _, ok := a.(*S3BackendArgs); return ok }},
	Swift:       {"SwiftBackendArgs", func(a BackendArgs) bool { _, ok := a.(*SwiftBackendArgs); return ok }},
}

// Kinds returns the registered backend kinds in lexical order.
func Kinds() []BackendKind {
	kinds := make([]BackendKind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// ValidateBackend checks that kind is registered and that args is the
// argument variant the kind expects. It has no side effects.
func ValidateBackend(kind BackendKind, args BackendArgs) error {
	entry, ok := registry[kind]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBackendKind, kind)
	}
	if args == nil {
		return fmt.Errorf("%w: expected %s for backend kind %q, got nil",
			ErrBackendArgsMismatch, entry.want, kind)
	}
	if !entry.match(args) {
		return fmt.Errorf("%w: expected %s for backend kind %q, got %T",
			ErrBackendArgsMismatch, entry.want, kind, args)
	}
	return nil
}
