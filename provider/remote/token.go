// Copyright © 2026 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package remote

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ResolveToken retrieves the API token for hostname using the standard
// precedence:
//  1. TF_TOKEN_<hostname with dots replaced by underscores>
//  2. TF_TOKEN
//  3. configured, the token from the backend configuration
//  4. the matching host entry in ~/.terraform.d/credentials.tfrc.json
//
// An empty result is not an error here; the API rejects unauthenticated
// calls with a far better message than we could synthesize.
func ResolveToken(hostname, configured string) (string, error) {
	hostVar := strings.ReplaceAll(hostname, ".", "_")
	if token := os.Getenv("TF_TOKEN_" + hostVar); token != "" {
		return token, nil
	}
	if token := os.Getenv("TF_TOKEN"); token != "" {
		return token, nil
	}
	if configured != "" {
		return configured, nil
	}
	return credentialsFileToken(hostname)
}

func credentialsFileToken(hostname string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	credsFile := filepath.Join(home, ".terraform.d", "credentials.tfrc.json")
	data, err := os.ReadFile(credsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds struct {
		Credentials map[string]struct {
			Token string `json:"token"`
		} `json:"credentials"`
	}
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("failed to unmarshal credentials file: %w", err)
	}

	return creds.Credentials[hostname].Token, nil
}
