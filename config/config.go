// Package config loads CLI configuration for memoforge.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is looked up in the user's home directory when no
// explicit config path is given.
const DefaultFileName = ".memoforge.yaml"

// Config controls CLI behavior. Every field is optional; zero values fall
// back to defaults.
type Config struct {
	// TypstBinary is the path of the typst executable used for rendering.
	TypstBinary string `yaml:"typst_binary"`

	// Format is the default output format ("svg" or "pdf").
	Format string `yaml:"format"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TypstBinary: "typst",
		Format:      "svg",
		LogLevel:    "warn",
	}
}

// Load reads a YAML config file and fills unset fields with defaults. A
// missing file is not an error: defaults are returned. An empty path reads
// DefaultFileName from the user's home directory.
func Load(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, DefaultFileName)
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file %q: %w", path, err)
	}

	defaults := Default()
	if cfg.TypstBinary == "" {
		cfg.TypstBinary = defaults.TypstBinary
	}
	if cfg.Format == "" {
		cfg.Format = defaults.Format
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaults.LogLevel
	}
	return cfg, nil
}
