// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// AzureRMBackendArgs configures a remote state stored in the AzureRM backend.
// Most authentication fields are sourced from ARM_* environment variables by
// the provider when unset.
type AzureRMBackendArgs struct {
	// StorageAccountName is the name of the storage account. Required.
	StorageAccountName string `hcl:"storage_account_name,optional" yaml:"storage_account_name,omitempty"`
	// ContainerName is the storage container within the account. Required.
	ContainerName string `hcl:"container_name,optional" yaml:"container_name,omitempty"`
	// Key is the name of the blob holding the state file.
	Key string `hcl:"key,optional" yaml:"key,omitempty"`
	// Environment selects the Azure environment: public (default), china,
	// german, stack or usgovernment. Sourced from ARM_ENVIRONMENT if unset.
	Environment string `hcl:"environment,optional" yaml:"environment,omitempty"`
	// Endpoint is a custom Azure Resource Manager endpoint (ARM_ENDPOINT).
	Endpoint string `hcl:"endpoint,optional" yaml:"endpoint,omitempty"`
	// UseMSI authenticates via Managed Service Identity (ARM_USE_MSI).
	UseMSI            *bool  `hcl:"use_msi,optional" yaml:"use_msi,omitempty"`
	SubscriptionID    string `hcl:"subscription_id,optional" yaml:"subscription_id,omitempty"`
	TenantID          string `hcl:"tenant_id,optional" yaml:"tenant_id,omitempty"`
	MSIEndpoint       string `hcl:"msi_endpoint,optional" yaml:"msi_endpoint,omitempty"`
	SASToken          string `hcl:"sas_token,optional" yaml:"sas_token,omitempty"`
	AccessKey         string `hcl:"access_key,optional" yaml:"access_key,omitempty"`
	ResourceGroupName string `hcl:"resource_group_name,optional" yaml:"resource_group_name,omitempty"`
	ClientID          string `hcl:"client_id,optional" yaml:"client_id,omitempty"`
	ClientSecret      string `hcl:"client_secret,optional" yaml:"client_secret,omitempty"`
	// Workspace is the Terraform workspace from which to read state.
	Workspace string `hcl:"workspace,optional" yaml:"workspace,omitempty"`
}

func (a *AzureRMBackendArgs) Kind() BackendKind { return AzureRM }

func (a *AzureRMBackendArgs) Validate() error {
	if err := requireString("storage_account_name", a.StorageAccountName); err != nil {
		return err
	}
	return requireString("container_name", a.ContainerName)
}

func (a *AzureRMBackendArgs) props() map[string]cty.Value {
	p := make(map[string]cty.Value)
	setString(p, "storage_account_name", a.StorageAccountName)
	setString(p, "container_name", a.ContainerName)
	setString(p, "key", a.Key)
	setString(p, "environment", a.Environment)
	setString(p, "endpoint", a.Endpoint)
	setBool(p, "use_msi", a.UseMSI)
	setString(p, "subscription_id", a.SubscriptionID)
	setString(p, "tenant_id", a.TenantID)
	setString(p, "msi_endpoint", a.MSIEndpoint)
	setString(p, "sas_token", a.SASToken)
	setString(p, "access_key", a.AccessKey)
	setString(p, "resource_group_name", a.ResourceGroupName)
	setString(p, "client_id", a.ClientID)
	setString(p, "client_secret", a.ClientSecret)
	setString(p, "workspace", a.Workspace)
	return p
}
