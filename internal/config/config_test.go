package config

import (
	"errors"
	"testing"
	"time"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{"JWT_SECRET": "s3cret"}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}

	if cfg.Port != 8080 || cfg.Addr() != ":8080" {
		t.Errorf("unexpected port %d (%s)", cfg.Port, cfg.Addr())
	}
	if cfg.DBPath != "./data/dayplanner.db" {
		t.Errorf("unexpected DBPath %s", cfg.DBPath)
	}
	if cfg.StaticPath != "./static" {
		t.Errorf("unexpected StaticPath %s", cfg.StaticPath)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("unexpected TokenTTL %v", cfg.TokenTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected LogLevel %s", cfg.LogLevel)
	}
	if cfg.PrematerializeCron != "" || cfg.PrematerializeDays != 7 {
		t.Errorf("unexpected prematerialize settings %q/%d", cfg.PrematerializeCron, cfg.PrematerializeDays)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"JWT_SECRET":          "s3cret",
		"PORT":                "9090",
		"DB_PATH":             "/tmp/test.db",
		"TOKEN_TTL":           "1h30m",
		"LOG_LEVEL":           "debug",
		"PREMATERIALIZE_CRON": "0 3 * * *",
		"PREMATERIALIZE_DAYS": "14",
	}))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Port != 9090 || cfg.DBPath != "/tmp/test.db" || cfg.TokenTTL != 90*time.Minute || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.PrematerializeCron != "0 3 * * *" || cfg.PrematerializeDays != 14 {
		t.Errorf("unexpected prematerialize settings %q/%d", cfg.PrematerializeCron, cfg.PrematerializeDays)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"JWT_SECRET": "x", "PORT": "http"}},
		{"port out of range", map[string]string{"JWT_SECRET": "x", "PORT": "70000"}},
		{"bad ttl", map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "tomorrow"}},
		{"negative ttl", map[string]string{"JWT_SECRET": "x", "TOKEN_TTL": "-1h"}},
		{"zero days", map[string]string{"JWT_SECRET": "x", "PREMATERIALIZE_DAYS": "0"}},
		{"bad cron", map[string]string{"JWT_SECRET": "x", "PREMATERIALIZE_CRON": "every night"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(env(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestRequireSecret(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if err := cfg.RequireSecret(); !errors.Is(err, ErrMissingSecret) {
		t.Errorf("expected ErrMissingSecret, got %v", err)
	}

	cfg.JWTSecret = "s3cret"
	if err := cfg.RequireSecret(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
