// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for webstations state.
	DefaultConfigDir = ".webstations"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default catalog database file name.
	DefaultCatalogFile = "catalog.db"
)

// Config holds static converter configuration (read-only after init).
type Config struct {
	// InputDir is the directory holding the master playlist sources.
	InputDir string `yaml:"input_dir,omitempty"`
	// OutputDir receives the normalized CSV/JSON renditions and index.
	OutputDir string `yaml:"output_dir,omitempty"`
	// IndexFile is the index file name inside OutputDir.
	IndexFile string        `yaml:"index_file,omitempty"`
	Catalog   CatalogConfig `yaml:"catalog,omitempty"`
}

// CatalogConfig holds configuration for the conversion-run catalog.
type CatalogConfig struct {
	// Path is the file path to the SQLite catalog database.
	Path string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		InputDir:  "playlists.master",
		OutputDir: "playlists",
		IndexFile: "index.json",
	}
}

// Load loads configuration from the .webstations directory in the given
// path. A missing config file is not an error; the defaults apply so the
// converter works in an uninitialized checkout.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("WEBSTATIONS_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if dir := os.Getenv("WEBSTATIONS_OUTPUT_DIR"); dir != "" {
		c.OutputDir = dir
	}
}

// CatalogPath returns the catalog database path, defaulting to the config
// directory under basePath.
func (c *Config) CatalogPath(basePath string) string {
	if c.Catalog.Path != "" {
		return c.Catalog.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, DefaultCatalogFile)
}

// ConfigDir returns the path to the .webstations config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}
