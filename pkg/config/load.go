package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads configuration from the YAML file at path, applies
// defaults and environment overrides, and validates the result. An
// empty path skips the file and resolves defaults plus environment
// only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
		}
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies CREDHYG_* environment variable overrides.
// Environment variables take precedence over file-based configuration;
// command-line flags override both in the command layer.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("CREDHYG_MAX_AGE"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.MaxAge = n
		}
	}
	if val := os.Getenv("CREDHYG_DATE_FORMAT"); val != "" {
		cfg.DateFormat = val
	}
	if val := os.Getenv("CREDHYG_LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("CREDHYG_LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}
	if val := os.Getenv("CREDHYG_HISTORY_PATH"); val != "" {
		cfg.History.Path = val
	}
}
