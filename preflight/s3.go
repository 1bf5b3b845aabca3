// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package preflight

import (
	"context"
	"fmt"
	"path"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/tfref/tfrefgo/internal/aws"
	"github.com/tfref/tfrefgo/state"
)

// defaultWorkspaceKeyPrefix matches the s3 backend's default for non-default
// workspaces.
const defaultWorkspaceKeyPrefix = "env:"

// s3HeadAPI is the slice of the S3 client the check needs.
type s3HeadAPI interface {
	HeadObject(ctx context.Context, in *s3v2.HeadObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.HeadObjectOutput, error)
}

// WithS3Client substitutes the S3 client, primarily for tests.
func WithS3Client(api s3HeadAPI) Option {
	return func(c *Checker) { c.s3 = api }
}

// s3ObjectKey returns the object key holding the state for the configured
// workspace. The default workspace lives at the configured key; any other
// workspace is nested under the workspace key prefix.
func s3ObjectKey(args *state.S3BackendArgs) string {
	if args.Workspace == "" || args.Workspace == "default" {
		return args.Key
	}
	prefix := args.WorkspaceKeyPrefix
	if prefix == "" {
		prefix = defaultWorkspaceKeyPrefix
	}
	return path.Join(prefix, args.Workspace, args.Key)
}

func (c *Checker) checkS3(ctx context.Context, f Finding, args *state.S3BackendArgs) Finding {
	key := s3ObjectKey(args)
	f.Detail = fmt.Sprintf("s3://%s/%s", args.Bucket, key)

	client := c.s3
	if client == nil {
		var loadOpts []aws.Option
		if args.Region != "" {
			loadOpts = append(loadOpts, aws.WithRegion(args.Region))
		}
		if args.Profile != "" {
			loadOpts = append(loadOpts, aws.WithProfile(args.Profile))
		}
		if args.SharedCredentialsFile != "" {
			loadOpts = append(loadOpts, aws.WithSharedCredentialsFile(args.SharedCredentialsFile))
		}
		if args.AccessKey != "" && args.SecretKey != "" {
			loadOpts = append(loadOpts, aws.WithStaticCredentials(args.AccessKey, args.SecretKey, args.Token))
		}

		cfg, err := aws.LoadAWSConfig(ctx, loadOpts...)
		if err != nil {
			f.Status = StatusFailed
			f.Err = fmt.Errorf("failed to load AWS config: %w", err)
			return f
		}

		var s3Opts []func(*s3v2.Options)
		if args.Endpoint != "" {
			s3Opts = append(s3Opts, aws.WithS3Endpoint(args.Endpoint))
		}
		client = aws.NewS3(cfg, s3Opts...)
	}

	_, err := client.HeadObject(ctx, &s3v2.HeadObjectInput{
		Bucket: awsv2.String(args.Bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		f.Status = StatusFailed
		f.Err = fmt.Errorf("failed to head state object: %w", err)
		return f
	}

	f.Status = StatusOK
	return f
}
