package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

var envVars = []string{
	"CHARMTI_PORT", "CHARMTI_METRICS_PORT", "CHARMTI_RATE_LIMIT_PER_MINUTE",
	"CHARMTI_BANK_PATH", "CHARMTI_CATALOG_PATH", "CHARMTI_EVENTS_URL",
	"CHARMTI_LOG_LEVEL", "CHARMTI_LOG_FORMAT",
}

func unsetEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Bank.Path != "" || cfg.Catalog.Path != "" {
		t.Error("expected embedded bank and catalog by default")
	}
	if cfg.Events.URL != "" {
		t.Errorf("expected events disabled, got %s", cfg.Events.URL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHARMTI_PORT", "9000")
	t.Setenv("CHARMTI_METRICS_PORT", "9001")
	t.Setenv("CHARMTI_RATE_LIMIT_PER_MINUTE", "30")
	t.Setenv("CHARMTI_BANK_PATH", "/etc/charmti/bank.yaml")
	t.Setenv("CHARMTI_CATALOG_PATH", "/etc/charmti/catalog.yaml")
	t.Setenv("CHARMTI_EVENTS_URL", "nats://nats:4222")
	t.Setenv("CHARMTI_LOG_LEVEL", "debug")
	t.Setenv("CHARMTI_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Bank.Path != "/etc/charmti/bank.yaml" {
		t.Errorf("expected bank path, got '%s'", cfg.Bank.Path)
	}
	if cfg.Catalog.Path != "/etc/charmti/catalog.yaml" {
		t.Errorf("expected catalog path, got '%s'", cfg.Catalog.Path)
	}
	if cfg.Events.URL != "nats://nats:4222" {
		t.Errorf("expected events URL, got '%s'", cfg.Events.URL)
	}
	if cfg.Logging.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.Logging.SlogLevel())
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected text format, got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t)
	path := filepath.Join(t.TempDir(), "charmti.yaml")
	body := "server:\n  port: 8080\nevents:\n  url: nats://localhost:4222\nlogging:\n  level: warn\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port kept, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Events.URL != "nats://localhost:4222" {
		t.Errorf("expected events URL from file, got '%s'", cfg.Events.URL)
	}
	if cfg.Logging.SlogLevel() != slog.LevelWarn {
		t.Errorf("expected warn level, got %v", cfg.Logging.SlogLevel())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadDotEnv(t *testing.T) {
	unsetEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CHARMTI_PORT=7777\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv failed: %v", err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("expected port from .env, got %d", cfg.Server.Port)
	}

	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}
