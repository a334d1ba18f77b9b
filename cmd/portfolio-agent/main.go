// cmd/portfolio-agent/main.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ani-2003-HD/portfolio-agent/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configPath string
)

func versionString() string {
	return fmt.Sprintf("portfolio-agent %s (commit: %s, built: %s)", version, commit, date)
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "portfolio-agent",
		Short: "Analyze software projects for portfolio descriptions",
		Long: `portfolio-agent — scans a project's files, detects the technologies in
use, and produces a structured analysis report for portfolio tooling.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(versionString())
		},
	}

	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(fileCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig resolves the config path and loads the config. Shared by
// every subcommand.
func loadConfig() (*config.Config, error) {
	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// resolveStorePath picks the history database location from the config,
// falling back to the canonical path, and ensures its directory exists.
func resolveStorePath(cfg *config.Config) (string, error) {
	path := cfg.Store.Path
	if path == "" {
		var err error
		path, err = config.DefaultStorePath()
		if err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating store directory: %w", err)
	}
	return path, nil
}
