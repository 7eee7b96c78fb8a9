package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/internal/cli/tui"
	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/pkg/printer"
)

var LoginCmd = &cobra.Command{
	Use:   "login [api-key]",
	Short: "Store your Reocities API key",
	Long: `Validate an API key against the Reocities API and save it to
~/.reocities/config for later commands.

When the key argument is omitted, an interactive prompt asks for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}
	if credStore == nil {
		return fmt.Errorf("credential store not initialized")
	}

	var apiKey string
	if len(args) == 1 {
		apiKey = strings.TrimSpace(args[0])
	} else {
		key, err := tui.PromptAPIKey()
		if err != nil {
			return err
		}
		if key == "" {
			printer.PrintInfo("Canceled.")
			return nil
		}
		apiKey = key
	}
	if apiKey == "" {
		return errors.New("API key must not be empty")
	}

	// Probe the API with the candidate key before persisting it.
	probe := client.New(apiClient.BaseURL, apiKey)
	if err := probe.Verify(cmd.Context()); err != nil {
		return fmt.Errorf("failed to validate API key: %w", err)
	}

	if err := credStore.SaveAPIKey(apiKey); err != nil {
		return err
	}

	printer.PrintSuccess("Successfully logged in!")
	printer.PrintInfo(fmt.Sprintf("API key saved to %s", credStore.Path()))
	return nil
}
