package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var (
	// Flags for the upload command
	uploadFolder    string
	uploadOverwrite bool
)

var UploadCmd = &cobra.Command{
	Use:   "upload <file> [file...]",
	Short: "Upload individual files",
	Long: `Upload one or more files to your site. Each file keeps its base
name; use --folder to place them under a remote folder.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	UploadCmd.Flags().StringVar(&uploadFolder, "folder", "", "Remote folder to upload into")
	UploadCmd.Flags().BoolVar(&uploadOverwrite, "overwrite", true, "Overwrite remote files that already exist")
}

func runUpload(cmd *cobra.Command, args []string) error {
	api, err := requireAuth()
	if err != nil {
		return err
	}

	var errs []error
	for _, path := range args {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			printer.PrintFailure(fmt.Sprintf("File '%s' does not exist", path))
			errs = append(errs, fmt.Errorf("file '%s' does not exist", path))
			continue
		}

		res, err := api.UploadFile(cmd.Context(), path, uploadFolder, uploadOverwrite)
		if err != nil {
			printer.PrintFailure(fmt.Sprintf("Failed to upload %s: %v", filepath.Base(path), err))
			errs = append(errs, fmt.Errorf("failed to upload %s: %w", path, err))
			continue
		}
		printer.PrintSuccess(fmt.Sprintf("Uploaded %s to %s", res.Filename, res.Path))
	}

	if len(errs) > 0 {
		return fmt.Errorf("one or more uploads failed: %w", errors.Join(errs...))
	}
	return nil
}
