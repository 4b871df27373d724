// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Storage
	DataDir string `json:"data_dir,omitempty"` // Directory for the local document store
	Backend string `json:"backend,omitempty"`  // Persistence backend: "file" or "sqlite"

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	SavePolicy string `json:"save_policy,omitempty"` // "immediate" or "debounced"
	SaveDelay  string `json:"save_delay,omitempty"`  // Debounce delay, e.g. "500ms"
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information

	// Server
	Port int `json:"port,omitempty"` // HTTP server port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Backend != "" && c.Backend != "file" && c.Backend != "sqlite" {
		return fmt.Errorf("config error: 'backend' must be \"file\" or \"sqlite\"")
	}

	if c.SavePolicy != "" && c.SavePolicy != "immediate" && c.SavePolicy != "debounced" {
		return fmt.Errorf("config error: 'save_policy' must be \"immediate\" or \"debounced\"")
	}

	if c.SaveDelay != "" {
		if _, err := time.ParseDuration(c.SaveDelay); err != nil {
			return fmt.Errorf("config error: invalid 'save_delay': %w", err)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Backend == "" {
		result.Backend = defaults.Backend
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.SavePolicy == "" {
		result.SavePolicy = defaults.SavePolicy
	}
	if result.SaveDelay == "" {
		result.SaveDelay = defaults.SaveDelay
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// SaveDelayDuration parses the configured debounce delay, falling back to
// zero when unset.
func (c *Config) SaveDelayDuration() time.Duration {
	if c.SaveDelay == "" {
		return 0
	}
	d, err := time.ParseDuration(c.SaveDelay)
	if err != nil {
		return 0
	}
	return d
}
