// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"critter-calc/internal/theme"
)

// Config is the runtime configuration of the widget service.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	MaxWidgets      int
	DefaultTheme    theme.Theme
	ExportLogs      bool
}

// LoadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// Load builds a Config from the environment, applying defaults for unset
// variables.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:            ":8080",
		ShutdownTimeout: 5 * time.Second,
		MaxWidgets:      1024,
		DefaultTheme:    theme.Default(),
	}

	if v := getenv("HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
		}
		cfg.ShutdownTimeout = d
	}

	if v := getenv("MAX_WIDGETS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("MAX_WIDGETS: %w", err)
		}
		if n <= 0 {
			return Config{}, fmt.Errorf("MAX_WIDGETS: must be positive, got %d", n)
		}
		cfg.MaxWidgets = n
	}

	if v := getenv("DEFAULT_THEME"); v != "" {
		t, err := theme.Lookup(v)
		if err != nil {
			return Config{}, fmt.Errorf("DEFAULT_THEME: %w", err)
		}
		cfg.DefaultTheme = t
	}

	if v := getenv("OTEL_LOGS_EXPORT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("OTEL_LOGS_EXPORT: %w", err)
		}
		cfg.ExportLogs = b
	}

	return cfg, nil
}
