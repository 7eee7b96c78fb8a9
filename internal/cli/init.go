package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/internal/site"
	"github.com/reocities/cli/pkg/printer"
)

var InitCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Scaffold a new site directory",
	Long: `Create a starter index.html and a reocities.yaml manifest in the
given directory (default "."). Existing files are never overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

const starterIndexHTML = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8">
    <title>My Reocities Site</title>
  </head>
  <body>
    <h1>Welcome to my site!</h1>
    <p>Edit index.html and run 'reocities push' to publish.</p>
  </body>
</html>
`

const starterManifest = `# Site settings used by 'reocities push'.
#
# folder: remote folder uploads land under (default: site root)
# ignore: gitignore-style patterns excluded from push
folder: ""
ignore: []
`

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	manifestPath := filepath.Join(dir, site.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists, refusing to reinitialize", manifestPath)
	}

	indexPath := filepath.Join(dir, "index.html")
	if _, err := os.Stat(indexPath); os.IsNotExist(err) {
		if err := os.WriteFile(indexPath, []byte(starterIndexHTML), 0o644); err != nil {
			return fmt.Errorf("failed to write index.html: %w", err)
		}
		printer.PrintSuccess(fmt.Sprintf("Created %s", indexPath))
	}

	if err := os.WriteFile(manifestPath, []byte(starterManifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", site.ManifestName, err)
	}
	printer.PrintSuccess(fmt.Sprintf("Created %s", manifestPath))

	printer.PrintInfo("")
	printer.PrintInfo("Next steps:")
	printer.PrintInfo("  reocities login <your-api-key>")
	printer.PrintInfo(fmt.Sprintf("  reocities push %s", dir))
	return nil
}
