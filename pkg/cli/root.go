package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reocities/cli/internal/cli"
	"github.com/reocities/cli/internal/client"
	"github.com/reocities/cli/internal/config"
)

var (
	apiURL string
	apiKey string
)

var rootCmd = &cobra.Command{
	Use:   "reocities",
	Short: "Manage your Reocities site",
	Long:  `reocities uploads, lists, and deletes the files of a Reocities site through its HTTP API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore()
		if err != nil {
			return err
		}

		baseURL, key, err := resolveTarget(store)
		if err != nil {
			return err
		}

		cli.SetAPIClient(client.New(baseURL, key))
		cli.SetCredentialStore(store)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		printBanner()
		return cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "API base URL (overrides REOCITIES_API_URL; default "+client.DefaultBaseURL+")")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "API key (overrides REOCITIES_API_KEY and the stored credential)")

	// Add subcommands
	rootCmd.AddCommand(cli.LoginCmd)
	rootCmd.AddCommand(cli.LogoutCmd)
	rootCmd.AddCommand(cli.InitCmd)
	rootCmd.AddCommand(cli.PushCmd)
	rootCmd.AddCommand(cli.UploadCmd)
	rootCmd.AddCommand(cli.ListCmd)
	rootCmd.AddCommand(cli.DeleteCmd)
	rootCmd.AddCommand(cli.MkdirCmd)
	rootCmd.AddCommand(cli.StatusCmd)
	rootCmd.AddCommand(cli.VersionCmd)
}

func Root() *cobra.Command {
	return rootCmd
}

// resolveTarget applies the precedence flag > environment > stored
// credential for the API key, and flag > environment > default for the
// base URL.
func resolveTarget(store *config.Store) (string, string, error) {
	envCfg, err := config.LoadEnv()
	if err != nil {
		return "", "", err
	}

	base := strings.TrimSpace(apiURL)
	if base == "" {
		base = strings.TrimSpace(envCfg.BaseURL)
	}
	base = normalizeBaseURL(base)

	key := strings.TrimSpace(apiKey)
	if key == "" {
		key = strings.TrimSpace(envCfg.APIKey)
	}
	if key == "" {
		key, err = store.LoadAPIKey()
		if err != nil {
			return "", "", err
		}
	}

	return base, key, nil
}

func normalizeBaseURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return client.DefaultBaseURL
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return trimmed
	}
	return "https://" + trimmed
}
