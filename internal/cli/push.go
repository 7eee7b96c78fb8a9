package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/internal/publisher"
	"github.com/reocities/cli/internal/site"
	"github.com/reocities/cli/pkg/printer"
)

var (
	// Flags for the push command
	pushFolder    string
	pushOverwrite bool
	pushDryRun    bool
	pushProgress  bool
)

var PushCmd = &cobra.Command{
	Use:   "push [directory]",
	Short: "Upload a site directory",
	Long: `Upload every file under a directory (default ".") to your site,
preserving the directory layout.

Files matched by the root .gitignore or by the ignore patterns in
reocities.yaml are skipped, as are .git and reocities.yaml themselves.
Uploads are sent in batches; a failed batch does not stop the rest.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPush,
}

func init() {
	PushCmd.Flags().StringVar(&pushFolder, "folder", "", "Remote folder to upload into (overrides the manifest's folder)")
	PushCmd.Flags().BoolVar(&pushOverwrite, "overwrite", true, "Overwrite remote files that already exist")
	PushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "Show what would be uploaded without uploading")
	PushCmd.Flags().BoolVar(&pushProgress, "progress", false, "Render a progress bar instead of per-file output")
}

func runPush(cmd *cobra.Command, args []string) error {
	api, err := requireAuth()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	files, manifest, err := site.Collect(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printer.PrintInfo("No files to upload")
		return nil
	}

	folder := pushFolder
	if folder == "" && manifest != nil {
		folder = manifest.Folder
	}

	printer.PrintInfo(fmt.Sprintf("Found %d files to upload...", len(files)))

	pub := publisher.New(api)
	res, err := pub.Push(cmd.Context(), files, publisher.Options{
		Folder:       folder,
		Overwrite:    pushOverwrite,
		DryRun:       pushDryRun,
		ShowProgress: pushProgress,
	})
	if err != nil {
		return err
	}

	if pushDryRun {
		printer.PrintInfo(fmt.Sprintf("%d files would be uploaded", len(files)))
		return nil
	}

	fmt.Printf("\nUpload complete: %d succeeded, %d failed\n", res.Uploaded, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to upload", res.Failed, len(files))
	}
	return nil
}
