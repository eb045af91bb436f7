// Package config loads the optional per-directory advent configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat advent configuration.
type Config struct {
	Version     string `json:"version"`
	DataDir     string `json:"data_dir,omitempty"`     // root of the data/dayNN input tree
	DefaultMode string `json:"default_mode,omitempty"` // default --mode when the flag is omitted
}

// LoadConfig reads .advent/config.json from the specified directory.
// Resolution order: dir only (no home fallback). Returns an error if no
// config is found - callers treat a missing file as "use defaults".
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".advent", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes config.json to the directory's .advent dotdir.
func SaveConfig(dir string, cfg *Config) error {
	adventDir := filepath.Join(dir, ".advent")
	if err := os.MkdirAll(adventDir, 0755); err != nil {
		return fmt.Errorf("failed to create .advent dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(adventDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// InputPath resolves the input file for a puzzle day. An explicit path
// wins; otherwise the configured data dir (default "data") is searched
// for dayNN/input.txt.
func (c *Config) InputPath(day string, explicit string) string {
	if explicit != "" {
		return explicit
	}
	dataDir := "data"
	if c != nil && c.DataDir != "" {
		dataDir = c.DataDir
	}
	return filepath.Join(dataDir, day, "input.txt")
}

// Mode resolves the mode name for a run. An explicit flag value wins
// over the configured default.
func (c *Config) Mode(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c != nil && c.DefaultMode != "" {
		return c.DefaultMode
	}
	return ""
}
