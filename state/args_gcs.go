// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// GCSBackendArgs configures a remote state stored in the Google Cloud
// Storage backend.
type GCSBackendArgs struct {
	// Bucket is the name of the GCS bucket. Required.
	Bucket string `hcl:"bucket,optional" yaml:"bucket,omitempty"`
	// Credentials is a local path to GCP account credentials in JSON format.
	// Sourced from GOOGLE_CREDENTIALS if unset; Application Default
	// Credentials apply when neither is given.
	Credentials string `hcl:"credentials,optional" yaml:"credentials,omitempty"`
	// Prefix inside the bucket. Workspace states live at
	// <prefix>/<name>.tfstate.
	Prefix string `hcl:"prefix,optional" yaml:"prefix,omitempty"`
	// EncryptionKey is a 32-byte base64 customer-supplied key
	// (GOOGLE_ENCRYPTION_KEY).
	EncryptionKey string `hcl:"encryption_key,optional" yaml:"encryption_key,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *GCSBackendArgs) Kind() BackendKind { return GCS }

func (a *GCSBackendArgs) Validate() error {
	return requireString("bucket", a.Bucket)
}

func (a *GCSBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "bucket", a.Bucket)
	setString(p, "credentials", a.Credentials)
	setString(p, "prefix", a.Prefix)
	setString(p, "encryption_key", a.EncryptionKey)
	setString(p, "workspace", a.Workspace)
	return p
}
