package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxSelection caps the overlap selection size; the relaxed-quorum
// search enumerates combinations and is only meant for a handful of names.
const DefaultMaxSelection = 8

type Config struct {
	App     AppConfig
	Parse   ParseConfig
	Overlap OverlapConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// ParseConfig holds document parsing configuration
type ParseConfig struct {
	Profile     string
	MaxUploadMB int
}

// OverlapConfig holds overlap query configuration
type OverlapConfig struct {
	MaxSelection int
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Parsing configuration
	maxUploadMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_MB: %w", err)
	}

	config.Parse = ParseConfig{
		Profile:     getEnv("PARSE_PROFILE", "retail"),
		MaxUploadMB: maxUploadMB,
	}

	// Overlap configuration
	maxSelection, err := strconv.Atoi(getEnv("MAX_SELECTION", strconv.Itoa(DefaultMaxSelection)))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_SELECTION: %w", err)
	}

	config.Overlap = OverlapConfig{
		MaxSelection: maxSelection,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Parse.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.Overlap.MaxSelection < 3 {
		return fmt.Errorf("MAX_SELECTION must be at least 3")
	}
	return nil
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *ParseConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
