// Package config loads the portfolio-agent configuration from a TOML
// file, falling back to defaults when no file exists.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Output OutputConfig `toml:"output"`
	Store  StoreConfig  `toml:"store"`
	Scan   ScanConfig   `toml:"scan"`
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	Format string `toml:"format"`
}

// StoreConfig holds analysis-history persistence settings.
type StoreConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// ScanConfig holds project traversal settings.
type ScanConfig struct {
	ExtraExcludeDirs []string `toml:"extra_exclude_dirs"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "markdown",
		},
		Store: StoreConfig{
			Enabled: false,
		},
	}
}

// Load reads the config file at path. A missing file is not an error:
// defaults are returned so first runs need no setup.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "markdown"
	}

	return cfg, nil
}

// DefaultPath returns the canonical config file location under the user's
// config directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "portfolio-agent", "config.toml"), nil
}

// DefaultStorePath returns the canonical history database location.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "portfolio-agent", "history.db"), nil
}
