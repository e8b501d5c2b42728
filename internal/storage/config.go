package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file.
	userConfigFile = ".kicksconfig.yaml"

	// Default configuration values
	DefaultInventoryFile = "inventory.csv"
	DefaultColor         = ColorAuto
)

// Color modes for terminal output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user configuration from .kicksconfig.yaml.
// This file is user-managed and never written by kicks.
type Config struct {
	// InventoryFile is the path to the inventory CSV. Relative paths are
	// resolved against the directory holding the config file.
	InventoryFile string `yaml:"inventory_file"`

	// Color controls ANSI colours in output: auto, always or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		InventoryFile: DefaultInventoryFile,
		Color:         DefaultColor,
	}
}

// LoadConfig loads .kicksconfig.yaml from dir if it exists, otherwise
// returns defaults. Partial config files are merged with defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := ConfigPath(dir)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file - return defaults
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	if cfg.InventoryFile == "" {
		cfg.InventoryFile = DefaultInventoryFile
	}
	switch cfg.Color {
	case "":
		cfg.Color = DefaultColor
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("invalid color %q in %s: must be auto, always or never", cfg.Color, userConfigFile)
	}

	return cfg, nil
}

// InventoryPath returns the inventory file path, resolved against dir.
func (c *Config) InventoryPath(dir string) string {
	if filepath.IsAbs(c.InventoryFile) {
		return c.InventoryFile
	}
	return filepath.Join(dir, c.InventoryFile)
}

// ConfigPath returns the path to the user config file in dir.
func ConfigPath(dir string) string {
	return filepath.Join(dir, userConfigFile)
}
