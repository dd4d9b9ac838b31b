package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Overridden via -ldflags in release builds.
var embeddedBaseURL string

// LoadEnv loads a .env file from the working directory if one exists
func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load environment: %w", err)
	}
	return nil
}

// BaseURLFromEnv returns the API base URL configured through the environment.
// EMS_BASE_URL wins; otherwise EMS_ENV selects EMS_BASE_URL_PROD or EMS_BASE_URL_DEV.
func BaseURLFromEnv() string {
	if embeddedBaseURL != "" {
		return embeddedBaseURL
	}
	if url := os.Getenv("EMS_BASE_URL"); url != "" {
		return url
	}
	if os.Getenv("EMS_ENV") == "production" {
		return os.Getenv("EMS_BASE_URL_PROD")
	}
	return os.Getenv("EMS_BASE_URL_DEV")
}

// applyEnv overlays environment settings on cfg
func applyEnv(cfg Config) Config {
	if url := BaseURLFromEnv(); url != "" {
		cfg.BaseURL = url
	}
	if level := os.Getenv("EMS_LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if backend := os.Getenv("EMS_SESSION_BACKEND"); backend != "" {
		cfg.SessionBackend = backend
	}
	if backend := os.Getenv("EMS_AUTH_BACKEND"); backend != "" {
		cfg.AuthBackend = backend
	}
	return cfg
}
