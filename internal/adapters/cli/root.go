package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stationforge/station-planner/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	dataDir    string
	locale     string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "station-planner",
		Short: "Station Planner CLI - Inspect and summarize station build plans",
		Long: `Station Planner CLI works with station build plans saved as .x4station files.

Examples:
  station-planner summary my-hub.x4station
  station-planner summary --per-group my-hub.x4station
  station-planner validate my-hub.x4station
  station-planner recent list
  station-planner recent forget /old/path/my-hub.x4station`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "",
		"Path to the game data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "",
		"Display locale for product and module names (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddCommand(NewSummaryCommand())
	rootCmd.AddCommand(NewValidateCommand())
	rootCmd.AddCommand(NewRecentCommand())

	return rootCmd
}

// loadCLIConfig loads configuration and applies flag overrides.
func loadCLIConfig() *config.Config {
	cfg := config.LoadConfigOrDefault(configPath)
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if locale != "" {
		cfg.Data.Locale = locale
	}
	return cfg
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
