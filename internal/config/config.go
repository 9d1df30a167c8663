// Package config provides centralized configuration management for the join tool.
// It loads optional settings from environment variables with sensible defaults and
// validates them on startup to fail fast on misconfiguration. The input and output
// paths are never configured here; they always come from the command line.
package config

import "strconv"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Logging LoggingConfig
}

// InputConfig holds CSV input handling settings.
type InputConfig struct {
	// MaxFileSize is the maximum allowed input file size in bytes (default: 0, unlimited)
	MaxFileSize int64 `env:"JOIN_MAX_FILE_SIZE" default:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Default returns the configuration used when no environment variables are set.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	limit := "unlimited"
	if c.Input.MaxFileSize > 0 {
		limit = strconv.FormatInt(c.Input.MaxFileSize, 10)
	}
	return "Config{Input: {MaxFileSize: " + limit + "}, Logging: {Level: " +
		strconv.Quote(c.Logging.Level) + ", Format: " + strconv.Quote(c.Logging.Format) + "}}"
}
