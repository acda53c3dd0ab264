// Package config persists setup choices under .cplex-setup/ so a re-run can
// reuse the previously selected installation instead of rediscovering it.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the .cplex-setup/config.json structure.
type Config struct {
	// VendorRoot is the CPLEX installation directory chosen last run.
	VendorRoot string `json:"vendor_root,omitempty"`

	// Python is the interpreter path chosen last run.
	Python string `json:"python,omitempty"`
}

const (
	configDir  = ".cplex-setup"
	configFile = "config.json"
	envFile    = ".env"
)

// Dir returns the config directory under base.
func Dir(base string) string {
	return filepath.Join(base, configDir)
}

// Path returns the config file path under base.
func Path(base string) string {
	return filepath.Join(base, configDir, configFile)
}

// EnvPath returns the .env file path under base.
func EnvPath(base string) string {
	return filepath.Join(base, configDir, envFile)
}

// Load reads the config under base. A missing file yields an empty config.
func Load(base string) (*Config, error) {
	data, err := os.ReadFile(Path(base))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the config under base, creating the directory if needed.
func Save(base string, cfg *Config) error {
	if err := os.MkdirAll(Dir(base), 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", configDir, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(base), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
