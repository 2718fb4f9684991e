// Package config loads the application-level configuration file. Schedule
// preferences live in storage Settings; this file only decides where that
// storage is and how the app runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/weekendly/weekendly/internal/constants"
)

// Config is the on-disk configuration, read from
// ~/.config/weekendly/config.yaml when present.
type Config struct {
	// Storage is a database file path or a postgres connection string
	// (without embedded credentials).
	Storage string `yaml:"storage"`
	// Debug enables verbose logging to stderr.
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Storage: constants.DefaultStoragePath,
	}
}

// DefaultPath returns the expected config file location.
func DefaultPath() string {
	return filepath.Join(ExpandHome(constants.DefaultConfigDir), "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the
// file is absent. A malformed file is an error, not a silent fallback.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Storage == "" {
		cfg.Storage = constants.DefaultStoragePath
	}
	return cfg, nil
}

// Save writes the config file, creating its directory as needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}

// ExpandHome resolves a leading ~/ against the user's home directory.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return path
}
