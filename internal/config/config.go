package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when present; a missing file is not an error.
const defaultEnvFile = ".env"

// Config holds all application configuration.
type Config struct {
	Logger LoggerConfig
	Output OutputConfig
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// OutputConfig controls how and where the grocery document is written.
type OutputConfig struct {
	Format string // "json" or "yaml"
	Path   string // empty writes to standard output
	Gzip   bool
	Indent bool
}

// Load loads configuration from environment variables, seeding them from an
// env file first. Variables already set in the environment take precedence.
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Output: OutputConfig{
			Format: getEnv("OUTPUT_FORMAT", "json"),
			Path:   getEnv("OUTPUT_PATH", ""),
			Gzip:   getEnvAsBool("OUTPUT_GZIP", false),
			Indent: getEnvAsBool("OUTPUT_INDENT", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Output.Format != "json" && c.Output.Format != "yaml" {
		return fmt.Errorf("invalid output format: %s (must be json or yaml)", c.Output.Format)
	}

	if c.Output.Gzip && c.Output.Path == "" {
		return fmt.Errorf("output path is required when gzip is enabled")
	}

	return nil
}

// ToStdout reports whether the document goes to standard output.
func (c *OutputConfig) ToStdout() bool {
	return c.Path == ""
}

// loadEnvFile seeds the environment from MARKET_ENV_FILE, or from .env when
// that variable is unset. Only an explicitly named file must exist.
func loadEnvFile() error {
	path, explicit := os.LookupEnv("MARKET_ENV_FILE")
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
