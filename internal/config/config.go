// Package config provides configuration loading and validation for the API
// server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultPort is the port the server binds when nothing else is configured.
const DefaultPort = 8000

// Config represents the server configuration. All fields are optional;
// missing values use defaults or can be overridden via CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty"`         // TCP port to listen on
	CatalogFile string `json:"catalog_file,omitempty"` // Path to a careers JSON file, empty uses the embedded catalog
	LogJSON     bool   `json:"log_json,omitempty"`     // Emit JSON-encoded logs instead of console
	Debug       bool   `json:"debug,omitempty"`        // Lower the log level to debug
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{Port: DefaultPort}
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

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return cfg, nil
}

// ApplyEnv overlays environment variables onto the configuration. Unset or
// malformed variables leave the current value untouched.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("CATALOG_FILE"); v != "" {
		c.CatalogFile = v
	}
	if v := os.Getenv("LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogJSON = b
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 1 and 65535, got %d", c.Port)
	}

	if c.CatalogFile != "" {
		if _, err := os.Stat(c.CatalogFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogFile)
		}
	}

	return nil
}
