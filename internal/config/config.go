// Package config loads the server configuration for notekeeper serve.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the HTTP server and its backing store.
type Config struct {
	// Addr is the listen address, e.g. ":8484".
	Addr string `yaml:"addr"`

	// DataDir is the directory holding the notes file.
	DataDir string `yaml:"data_dir"`

	// Filename overrides the backing filename inside DataDir.
	Filename string `yaml:"filename"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Addr:    ":8484",
		DataDir: "./data",
	}
}

// Load reads a YAML config file on top of the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Addr == "" {
		cfg.Addr = Default().Addr
	}
	if cfg.DataDir == "" {
		cfg.DataDir = Default().DataDir
	}
	return cfg, nil
}
