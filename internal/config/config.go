// Package config loads the server configuration from YAML, filling in
// defaults for anything the file leaves out.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// Storage selects the puzzle store backend: "fs" or "sqlite".
	Storage string `yaml:"storage"`
	// DataDir is the fs store directory.
	DataDir string `yaml:"data_dir"`
	// SQLitePath is the sqlite store database file.
	SQLitePath string `yaml:"sqlite_path"`

	// Engine selects the line engine: "sweep" or "enum".
	Engine string `yaml:"engine"`

	// LogLevel: debug|info|warn|error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:       ":8080",
		Storage:    "fs",
		DataDir:    "./data",
		SQLitePath: "./data/puzzles.db",
		Engine:     "sweep",
		LogLevel:   "info",
	}
}

// Load reads path over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Storage {
	case "fs", "sqlite":
	default:
		return fmt.Errorf("bad storage backend %q (want fs or sqlite)", c.Storage)
	}
	switch c.Engine {
	case "sweep", "enum":
	default:
		return fmt.Errorf("bad line engine %q (want sweep or enum)", c.Engine)
	}
	return nil
}
