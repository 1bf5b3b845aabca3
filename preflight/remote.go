// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package preflight

import (
	"context"
	"fmt"

	tfe "github.com/hashicorp/go-tfe"

	"github.com/tfref/tfrefgo/provider/remote"
	"github.com/tfref/tfrefgo/state"
)

// remoteAPI is the slice of the TFE surface the check needs.
type remoteAPI interface {
	ReadWorkspace(ctx context.Context, organization, workspace string) error
}

// WithRemoteClient substitutes the TFE accessor, primarily for tests.
func WithRemoteClient(api remoteAPI) Option {
	return func(c *Checker) { c.remote = api }
}

type tfeAccessor struct {
	client *tfe.Client
}

func (a *tfeAccessor) ReadWorkspace(ctx context.Context, organization, workspace string) error {
	if !(a.client.IsCloud() || a.client.IsEnterprise()) {
		return fmt.Errorf("host is neither Terraform Cloud nor Enterprise")
	}
	_, err := a.client.Workspaces.Read(ctx, organization, workspace)
	return err
}

func (c *Checker) checkRemote(ctx context.Context, f Finding, args *state.RemoteBackendArgs) Finding {
	hostname := args.Hostname
	if hostname == "" {
		hostname = remote.DefaultHostname
	}

	// A prefixed configuration selects its workspace at read time; probe the
	// default environment the provider would use.
	workspace := args.WorkspaceName
	if workspace == "" {
		workspace = args.WorkspacePrefix + "default"
	}
	f.Detail = fmt.Sprintf("%s/%s/%s", hostname, args.Organization, workspace)

	api := c.remote
	if api == nil {
		token, err := remote.ResolveToken(hostname, args.Token)
		if err != nil {
			f.Status = StatusFailed
			f.Err = fmt.Errorf("failed to resolve token: %w", err)
			return f
		}
		client, err := tfe.NewClient(&tfe.Config{Address: "https://" + hostname, Token: token})
		if err != nil {
			f.Status = StatusFailed
			f.Err = fmt.Errorf("failed to create TFE client: %w", err)
			return f
		}
		api = &tfeAccessor{client: client}
	}

	if err := api.ReadWorkspace(ctx, args.Organization, workspace); err != nil {
		f.Status = StatusFailed
		f.Err = fmt.Errorf("failed to read workspace: %w", err)
		return f
	}

	f.Status = StatusOK
	return f
}
