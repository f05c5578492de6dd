// Package main provides the entry point for the portfolio renderer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	siteDir    string
	contentURL string
	stateFile  string

	// cfg and logger are set by the root PersistentPreRunE.
	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio site renderer",
	Long: `Renders the portfolio page from its HTML skeleton and per-language content
bundles, validates the bundles, and serves the site.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at debug level and print summaries")
	rootCmd.PersistentFlags().StringVar(&siteDir, "site-dir", "", "Site root with index.html and content/ (default: bundled site)")
	rootCmd.PersistentFlags().StringVar(&contentURL, "content-url", "", "Base URL to fetch content bundles from")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", "", "JSON file persisting the lang and theme preferences")
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("site-dir") {
		loaded.SiteDir = siteDir
	}
	if flags.Changed("content-url") {
		loaded.ContentURL = contentURL
	}
	if flags.Changed("state-file") {
		loaded.StateFile = stateFile
	}
	if flags.Changed("verbose") {
		loaded.Verbose = verbose
	}

	cfg = loaded.MergeWithDefaults(config.Defaults())
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = logging.New(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
