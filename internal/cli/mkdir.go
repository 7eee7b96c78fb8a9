package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var mkdirParent string

var MkdirCmd = &cobra.Command{
	Use:   "mkdir <name>",
	Short: "Create a folder on your site",
	Args:  cobra.ExactArgs(1),
	RunE:  runMkdir,
}

func init() {
	MkdirCmd.Flags().StringVar(&mkdirParent, "parent", "", "Parent folder to create inside")
}

func runMkdir(cmd *cobra.Command, args []string) error {
	api, err := requireAuth()
	if err != nil {
		return err
	}

	name := args[0]
	if err := api.CreateFolder(cmd.Context(), name, mkdirParent); err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}

	target := name
	if mkdirParent != "" {
		target = strings.TrimSuffix(mkdirParent, "/") + "/" + name
	}
	printer.PrintSuccess(fmt.Sprintf("Created folder %s", target))
	return nil
}
