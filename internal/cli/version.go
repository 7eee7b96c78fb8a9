package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/internal/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Reocities CLI version %s\n", version.Version)
	},
}
