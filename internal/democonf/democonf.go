// Package democonf loads and saves the demo program's TOML configuration.
package democonf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const fileName = ".combodemo.toml"

// Config holds the demo settings carried between runs
type Config struct {
	Version          int      `toml:"version"`
	Items            []string `toml:"items"`
	RecentSelections []string `toml:"recent_selections"`
	MultiSelect      bool     `toml:"multi_select"`
}

// Default returns the configuration used when none exists yet
func Default() *Config {
	return &Config{
		Version: 1,
		Items:   []string{"Apple", "Banana", "Cherry", "Damson", "Elderberry", "Fig", "Grape"},
	}
}

// DefaultPath resolves the config location, preferring the user config
// directory with a home directory fallback
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.UserHomeDir()
		if err != nil {
			dir = "."
		}
		dir = filepath.Join(dir, ".config")
	}
	return filepath.Join(dir, "combodemo", fileName)
}

// Load reads the config at path. A missing file is not an error; the
// defaults come back instead.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Items) == 0 {
		cfg.Items = Default().Items
	}
	return &cfg, nil
}

// Save writes the config to path, creating the directory when needed
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
