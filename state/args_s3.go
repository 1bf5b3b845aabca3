// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// S3BackendArgs configures a remote state stored in the S3 backend.
type S3BackendArgs struct {
	// Bucket is the name of the S3 bucket. Required.
	Bucket string `hcl:"bucket,optional" yaml:"bucket,omitempty"`
	// Key is the path to the state file inside the bucket. Required. When
	// using a non-default workspace the state path becomes
	// /workspace_key_prefix/workspace/key.
	Key string `hcl:"key,optional" yaml:"key,omitempty"`
	// Region of the bucket. Sourced from AWS_DEFAULT_REGION by the provider
	// if unset.
	Region string `hcl:"region,optional" yaml:"region,omitempty"`
	// Endpoint is a custom endpoint for the S3 API. Sourced from
	// AWS_S3_ENDPOINT if unset.
	Endpoint string `hcl:"endpoint,optional" yaml:"endpoint,omitempty"`
	// AccessKey and SecretKey come from the standard credentials pipeline
	// when unset.
	AccessKey string `hcl:"access_key,optional" yaml:"access_key,omitempty"`
	SecretKey string `hcl:"secret_key,optional" yaml:"secret_key,omitempty"`
	// Profile is the AWS profile name from the shared credentials file.
	Profile string `hcl:"profile,optional" yaml:"profile,omitempty"`
	// SharedCredentialsFile defaults to ~/.aws/credentials when a profile is
	// set.
	SharedCredentialsFile string `hcl:"shared_credentials_file,optional" yaml:"shared_credentials_file,omitempty"`
	// Token is an MFA token. Sourced from AWS_SESSION_TOKEN if needed and
	// unset.
	Token string `hcl:"token,optional" yaml:"token,omitempty"`
	// RoleArn, ExternalID and SessionName configure assuming an IAM role to
	// read the state.
	RoleArn     string `hcl:"role_arn,optional" yaml:"role_arn,omitempty"`
	ExternalID  string `hcl:"external_id,optional" yaml:"external_id,omitempty"`
	SessionName string `hcl:"session_name,optional" yaml:"session_name,omitempty"`
	// WorkspaceKeyPrefix is applied to the state path for non-default
	// workspaces. The provider defaults it to "env:".
	WorkspaceKeyPrefix string `hcl:"workspace_key_prefix,optional" yaml:"workspace_key_prefix,omitempty"`
	// IAMEndpoint and STSEndpoint are custom endpoints for the IAM and STS
	// APIs. Sourced from AWS_IAM_ENDPOINT / AWS_STS_ENDPOINT if unset.
	IAMEndpoint string `hcl:"iam_endpoint,optional" yaml:"iam_endpoint,omitempty"`
	STSEndpoint string `hcl:"sts_endpoint,optional" yaml:"sts_endpoint,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *S3BackendArgs) Kind() BackendKind { return S3 }

func (a *S3BackendArgs) Validate() error {
	if err := requireString("bucket", a.Bucket); err != nil {
		return err
	}
	return requireString("key", a.Key)
}

func (a *S3BackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "bucket", a.Bucket)
	setString(p, "key", a.Key)
	setString(p, "region", a.Region)
	setString(p, "endpoint", a.Endpoint)
	setString(p, "access_key", a.AccessKey)
	setString(p, "secret_key", a.SecretKey)
	setString(p, "profile", a.Profile)
	setString(p, "shared_credentials_file", a.SharedCredentialsFile)
	setString(p, "token", a.Token)
	setString(p, "role_arn", a.RoleArn)
	setString(p, "external_id", a.ExternalID)
	setString(p, "session_name", a.SessionName)
	setString(p, "workspace_key_prefix", a.WorkspaceKeyPrefix)
	setString(p, "iam_endpoint", a.IAMEndpoint)
	setString(p, "sts_endpoint", a.STSEndpoint)
	setString(p, "workspace", a.Workspace)
	return p
}
