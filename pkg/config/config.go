package config

import (
	"fmt"

	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/checker"
	"github.com/ShadowStrikeHQ/credhyg-passwordagechecker/pkg/telemetry/logging"
)

// Config holds the resolved configuration for a credhyg run. Values are
// resolved once at process start: flags take precedence over CREDHYG_*
// environment variables, which take precedence over the config file,
// which takes precedence over built-in defaults.
type Config struct {
	// MaxAge is the age threshold in days. Must be positive.
	MaxAge int `yaml:"max_age"`

	// DateFormat is the creation-date pattern, strptime-style or a
	// native Go layout.
	DateFormat string `yaml:"date_format"`

	Log     LogConfig     `yaml:"log"`
	History HistoryConfig `yaml:"history"`
}

// LogConfig configures diagnostic output.
type LogConfig struct {
	// Level is one of DEBUG, INFO, WARNING, ERROR, CRITICAL.
	Level string `yaml:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format"`
}

// HistoryConfig configures the optional scan-history store.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty disables history.
	Path string `yaml:"path"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		MaxAge:     90,
		DateFormat: "%Y-%m-%d",
		Log: LogConfig{
			Level:  "INFO",
			Format: "text",
		},
	}
}

// ApplyDefaults fills zero-valued fields of cfg with the built-in
// defaults.
func ApplyDefaults(cfg *Config) {
	def := Default()
	if cfg.MaxAge == 0 {
		cfg.MaxAge = def.MaxAge
	}
	if cfg.DateFormat == "" {
		cfg.DateFormat = def.DateFormat
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}

// Validate checks cfg. It runs before any input file is touched and
// returns the first problem found.
func Validate(cfg *Config) error {
	if cfg.MaxAge <= 0 {
		return fmt.Errorf("max_age must be a positive integer, got %d", cfg.MaxAge)
	}
	if !checker.ValidateDateFormat(cfg.DateFormat) {
		return fmt.Errorf("invalid date_format %q", cfg.DateFormat)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q (use text or json)", cfg.Log.Format)
	}
	return nil
}
