package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var (
	// Flags for the list command
	listFolder    string
	listRecursive bool
	listOutput    string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the files on your site",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	ListCmd.Flags().StringVar(&listFolder, "folder", "", "List a specific folder instead of the site root")
	ListCmd.Flags().BoolVar(&listRecursive, "recursive", false, "Include files in subfolders")
	ListCmd.Flags().StringVarP(&listOutput, "output", "o", "table", "Output format (table, json)")
}

func runList(cmd *cobra.Command, args []string) error {
	api, err := requireAuth()
	if err != nil {
		return err
	}

	files, err := api.ListFiles(cmd.Context(), listFolder, listRecursive)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}

	if listOutput == string(printer.OutputTypeJSON) {
		p := printer.New(printer.OutputTypeJSON)
		return p.PrintJSON(files)
	}

	if len(files) == 0 {
		printer.PrintInfo("No files found")
		return nil
	}

	location := "root"
	if listFolder != "" {
		location = "/" + strings.TrimPrefix(listFolder, "/")
	}
	printer.PrintInfo(fmt.Sprintf("Files in %s:", location))

	table := printer.NewTablePrinter(os.Stdout)
	table.SetHeaders("Name", "Size")
	for _, f := range files {
		table.AddRow(f.DisplayPath(), printer.FormatSize(f.Size))
	}
	return table.Render()
}
