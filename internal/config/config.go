// Package config loads server settings from the environment. A .env file in
// the working directory is read first when present; real environment
// variables win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// ErrMissingSecret is returned by RequireSecret when JWT_SECRET is unset.
var ErrMissingSecret = errors.New("JWT_SECRET is required")

type Config struct {
	Port       int
	DBPath     string
	StaticPath string
	JWTSecret  string
	TokenTTL   time.Duration
	LogLevel   string

	// PrematerializeCron is a standard five-field cron spec. Empty disables
	// the background job.
	PrematerializeCron string
	PrematerializeDays int
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Load reads .env (optional) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		DBPath:             get("DB_PATH", "./data/dayplanner.db"),
		StaticPath:         get("STATIC_PATH", "./static"),
		JWTSecret:          getenv("JWT_SECRET"),
		LogLevel:           get("LOG_LEVEL", "info"),
		PrematerializeCron: getenv("PREMATERIALIZE_CRON"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(get("PORT", "8080")); err != nil || cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}
	if cfg.TokenTTL, err = time.ParseDuration(get("TOKEN_TTL", "24h")); err != nil || cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", getenv("TOKEN_TTL"))
	}
	if cfg.PrematerializeDays, err = strconv.Atoi(get("PREMATERIALIZE_DAYS", "7")); err != nil || cfg.PrematerializeDays < 1 {
		return nil, fmt.Errorf("invalid PREMATERIALIZE_DAYS %q", getenv("PREMATERIALIZE_DAYS"))
	}
	if cfg.PrematerializeCron != "" {
		if _, err := cron.ParseStandard(cfg.PrematerializeCron); err != nil {
			return nil, fmt.Errorf("invalid PREMATERIALIZE_CRON: %w", err)
		}
	}
	return cfg, nil
}

// RequireSecret reports ErrMissingSecret when no signing secret is set. Only
// the server needs one.
func (c *Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return ErrMissingSecret
	}
	return nil
}
