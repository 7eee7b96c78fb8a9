package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func runLogout(cmd *cobra.Command, args []string) error {
	if credStore == nil {
		return fmt.Errorf("credential store not initialized")
	}

	removed, err := credStore.Clear()
	if err != nil {
		return err
	}
	if removed {
		printer.PrintSuccess("Logged out successfully")
	} else {
		printer.PrintInfo("Not currently logged in")
	}
	return nil
}
