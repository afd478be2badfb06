package config

import (
	"os"
	"strconv"
	"time"

	"artsdash/internal/errors"
)

// DefaultDataURL is the published survey CSV used when no override is set.
const DefaultDataURL = "https://raw.githubusercontent.com/Wanioooo/tuto-SV/refs/heads/main/arts_faculty_data.csv"

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds dataset source settings
type DataConfig struct {
	// URL of the remote survey CSV
	URL string
	// File is an optional local CSV/XLSX path; takes precedence over URL
	File string
	// FetchTimeout bounds the remote fetch
	FetchTimeout time.Duration
	// PreviewRows is the number of raw rows shown on the dashboard
	PreviewRows int
}

// Locator returns the effective dataset locator.
func (c DataConfig) Locator() string {
	if c.File != "" {
		return c.File
	}
	return c.URL
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Data: DataConfig{
			URL:          getEnv("SURVEY_DATA_URL", DefaultDataURL),
			File:         getEnv("SURVEY_DATA_FILE", ""),
			FetchTimeout: getEnvDuration("SURVEY_FETCH_TIMEOUT", 30*time.Second),
			PreviewRows:  getEnvInt("SURVEY_PREVIEW_ROWS", 10),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	if config.Data.Locator() == "" {
		return errors.ConfigInvalid("SURVEY_DATA_URL or SURVEY_DATA_FILE is required")
	}
	if config.Data.PreviewRows <= 0 {
		return errors.ConfigInvalid("SURVEY_PREVIEW_ROWS must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
