// Package cli implements the reocities subcommands.
package cli

import (
	"fmt"

	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/internal/config"
)

var (
	apiClient *client.Client
	credStore *config.Store
)

// SetAPIClient wires the shared API client used by all commands.
func SetAPIClient(c *client.Client) {
	apiClient = c
}

// SetCredentialStore wires the credential store used by login and logout.
func SetCredentialStore(s *config.Store) {
	credStore = s
}

// requireAuth returns the shared client, failing when no API key is
// configured via flag, environment, or the credential file.
func requireAuth() (*client.Client, error) {
	if apiClient == nil {
		return nil, fmt.Errorf("API client not initialized")
	}
	if !apiClient.HasKey() {
		return nil, fmt.Errorf("not logged in. Please run 'reocities login <your-api-key>' first")
	}
	return apiClient, nil
}
