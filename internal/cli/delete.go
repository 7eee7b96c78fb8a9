package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var DeleteCmd = &cobra.Command{
	Use:   "delete <path> [path...]",
	Short: "Delete files from your site",
	Long: `Delete one or more remote files by path, for example
'reocities delete old.html blog/draft.html'.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	api, err := requireAuth()
	if err != nil {
		return err
	}

	var errs []error
	for _, path := range args {
		if err := api.DeleteFile(cmd.Context(), path); err != nil {
			printer.PrintFailure(fmt.Sprintf("Failed to delete %s: %v", path, err))
			errs = append(errs, fmt.Errorf("failed to delete %s: %w", path, err))
			continue
		}
		printer.PrintSuccess(fmt.Sprintf("Deleted %s", path))
	}

	if len(errs) > 0 {
		return fmt.Errorf("one or more deletes failed: %w", errors.Join(errs...))
	}
	return nil
}
