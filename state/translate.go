// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package state

import "github.com/zclconf/go-cty/cty"

// Backend configuration crosses the engine boundary with camelCase keys
// while the backends themselves speak snake_case. The two tables below are
// exact inverses of each other and are the single source of truth for that
// mapping. Names absent from a table pass through unchanged, so unknown
// keys survive a round trip intact.
//
// http_auth is deliberately identity-mapped in both directions.

var snakeToCamel = map[string]string{
	"backend_type":             "backendType",
	"access_key":               "accessKey",
	"access_token":             "accessToken",
	"account":                  "account",
	"address":                  "address",
	"auth_url":                 "authUrl",
	"bucket":                   "bucket",
	"ca_file":                  "caFile",
	"cacert_file":              "cacertFile",
	"cacert_path":              "cacertPath",
	"cert":                     "cert",
	"cert_file":                "certFile",
	"cert_path":                "certPath",
	"client_id":                "clientId",
	"client_secret":            "clientSecret",
	"conn_str":                 "connStr",
	"container":                "container",
	"container_name":           "containerName",
	"credentials":              "credentials",
	"datacenter":               "datacenter",
	"domain_id":                "domainId",
	"domain_name":              "domainName",
	"encryption_key":           "encryptionKey",
	"endpoint":                 "endpoint",
	"endpoints":                "endpoints",
	"environment":              "environment",
	"external_id":              "externalId",
	"gzip":                     "gzip",
	"hostname":                 "hostname",
	"http_auth":                "http_auth",
	"iam_endpoint":             "iamEndpoint",
	"insecure":                 "insecure",
	"insecure_skip_tls_verify": "insecureSkipTlsVerify",
	"key":                      "key",
	"key_file":                 "keyFile",
	"key_id":                   "keyId",
	"key_material":             "keyMaterial",
	"key_path":                 "keyPath",
	"lock_address":             "lockAddress",
	"lock_method":              "lockMethod",
	"msi_endpoint":             "msiEndpoint",
	"organization":             "organization",
	"outputs":                  "outputs",
	"password":                 "password",
	"path":                     "path",
	"prefix":                   "prefix",
	"profile":                  "profile",
	"region":                   "region",
	"region_name":              "regionName",
	"repo":                     "repo",
	"resource_group_name":      "resourceGroupName",
	"role_arn":                 "roleArn",
	"sas_token":                "sasToken",
	"schema_name":              "schemaName",
	"scheme":                   "scheme",
	"secret_key":               "secretKey",
	"session_name":             "sessionName",
	"shared_credentials_file":  "sharedCredentialsFile",
	"skip_cert_validation":     "skipCertValidation",
	"storage_account_name":     "storageAccountName",
	"sts_endpoint":             "stsEndpoint",
	"subpath":                  "subpath",
	"subscription_id":          "subscriptionId",
	"tenant_id":                "tenantId",
	"tenant_name":              "tenantName",
	"token":                    "token",
	"unlock_address":           "unlockAddress",
	"unlock_method":            "unlockMethod",
	"update_method":            "updateMethod",
	"url":                      "url",
	"use_msi":                  "useMsi",
	"user":                     "user",
	"user_id":                  "userId",
	"username":                 "username",
	"workspace":                "workspace",
	"workspace_key_prefix":     "workspaceKeyPrefix",
	"workspace_name":           "workspaceName",
	"workspace_prefix":         "workspacePrefix",
	"workspaces":               "workspaces",
}

var camelToSnake = map[string]string{
	"backendType":           "backend_type",
	"accessKey":             "access_key",
	"accessToken":           "access_token",
	"account":               "account",
	"address":               "address",
	"authUrl":               "auth_url",
	"bucket":                "bucket",
	"caFile":                "ca_file",
	"cacertFile":            "cacert_file",
	"cacertPath":            "cacert_path",
	"cert":                  "cert",
	"certFile":              "cert_file",
	"certPath":              "cert_path",
	"clientId":              "client_id",
	"clientSecret":          "client_secret",
	"connStr":               "conn_str",
	"container":             "container",
	"containerName":         "container_name",
	"credentials":           "credentials",
	"datacenter":            "datacenter",
	"domainId":              "domain_id",
	"domainName":            "domain_name",
	"encryptionKey":         "encryption_key",
	"endpoint":              "endpoint",
	"endpoints":             "endpoints",
	"environment":           "environment",
	"externalId":            "external_id",
	"gzip":                  "gzip",
	"hostname":              "hostname",
	"http_auth":             "http_auth",
	"iamEndpoint":           "iam_endpoint",
	"insecure":              "insecure",
	"insecureSkipTlsVerify": "insecure_skip_tls_verify",
	"key":                   "key",
	"keyFile":               "key_file",
	"keyId":                 "key_id",
	"keyMaterial":           "key_material",
	"keyPath":               "key_path",
	"lockAddress":           "lock_address",
	"lockMethod":            "lock_method",
	"msiEndpoint":           "msi_endpoint",
	"organization":          "organization",
	"outputs":               "outputs",
	"password":              "password",
	"path":                  "path",
	"prefix":                "prefix",
	"profile":               "profile",
	"region":                "region",
	"regionName":            "region_name",
	"repo":                  "repo",
	"resourceGroupName":     "resource_group_name",
	"roleArn":               "role_arn",
	"sasToken":              "sas_token",
	"schemaName":            "schema_name",
	"scheme":                "scheme",
	"secretKey":             "secret_key",
	"sessionName":           "session_name",
	"sharedCredentialsFile": "shared_credentials_file",
	"skipCertValidation":    "skip_cert_validation",
	"storageAccountName":    "storage_account_name",
	"stsEndpoint":           "sts_endpoint",
	"subpath":               "subpath",
	"subscriptionId":        "subscription_id",
	"tenantId":              "tenant_id",
	"tenantName":            "tenant_name",
	"token":                 "token",
	"unlockAddress":         "unlock_address",
	"unlockMethod":          "unlock_method",
	"updateMethod":          "update_method",
	"url":                   "url",
	"useMsi":                "use_msi",
	"user":                  "user",
	"userId":                "user_id",
	"username":              "username",
	"workspace":             "workspace",
	"workspaceKeyPrefix":    "workspace_key_prefix",
	"workspaceName":         "workspace_name",
	"workspacePrefix":       "workspace_prefix",
	"workspaces":            "workspaces",
}

// ToWire maps a single snake_case name to its camelCase wire form.
// Unknown names pass through unchanged.
func ToWire(name string) string {
	if w, ok := snakeToCamel[name]; ok {
		return w
	}
	return name
}

// ToInternal maps a single camelCase wire name back to snake_case.
// Unknown names pass through unchanged.
func ToInternal(name string) string {
	if s, ok := camelToSnake[name]; ok {
		return s
	}
	return name
}

// TranslateToWire renames every key in props to its wire form, recursing
// into object and map values so that nested blocks such as workspaces are
// translated as well. Values are never altered.
func TranslateToWire(props map[string]cty.Value) map[string]cty.Value {
	return translate(props, ToWire)
}

// TranslateToInternal is the inverse of TranslateToWire.
func TranslateToInternal(props map[string]cty.Value) map[string]cty.Value {
	return translate(props, ToInternal)
}

func translate(props map[string]cty.Value, rename func(string) string) map[string]cty.Value {
	out := make(map[string]cty.Value, len(props))
	for name, v := range props {
		out[rename(name)] = translateValue(v, rename)
	}
	return out
}

func translateValue(v cty.Value, rename func(string) string) cty.Value {
	if v.IsNull() || !v.IsKnown() {
		return v
	}
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		if v.LengthInt() == 0 {
			return v
		}
		return cty.ObjectVal(translate(v.AsValueMap(), rename))
	case ty.IsMapType():
		if v.LengthInt() == 0 {
			return v
		}
		return cty.ObjectVal(translate(v.AsValueMap(), rename))
	default:
		return v
	}
}
