package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/pkg/printer"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and connection status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	if apiClient == nil {
		return fmt.Errorf("API client not initialized")
	}

	table := printer.NewTablePrinter(os.Stdout)
	table.SetHeaders("Property", "Value")
	if credStore != nil {
		table.AddRow("Config file", credStore.Path())
	}
	table.AddRow("API URL", apiClient.BaseURL)
	table.AddRow("API key", printer.EmptyValueOrDefault(apiClient.MaskedKey(), "<not set>"))

	if !apiClient.HasKey() {
		table.AddRow("Connection", "not logged in")
		return table.Render()
	}

	files, err := apiClient.ListFiles(cmd.Context(), "", true)
	if err != nil {
		table.AddRow("Connection", fmt.Sprintf("failed: %v", err))
		return table.Render()
	}
	table.AddRow("Connection", "ok")

	var total int64
	for _, f := range files {
		total += f.Size
	}
	table.AddRow("Files", fmt.Sprintf("%d (%s)", len(files), printer.FormatSize(total)))
	return table.Render()
}
