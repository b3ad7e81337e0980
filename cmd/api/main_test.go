package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"calculator-api/internal/config"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	t.Setenv(envFileVar, filepath.Join(t.TempDir(), "absent.env"))

	if err := loadDotEnv(); err != nil {
		t.Fatalf("expected missing dotenv file to be ignored, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("CALC_LOG_LEVEL=debug\nCALC_DOTENV_PROBE=loaded\n"), 0o600); err != nil {
		t.Fatalf("writing dotenv file: %v", err)
	}
	t.Setenv(envFileVar, path)
	t.Setenv("CALC_LOG_LEVEL", "warn")
	t.Setenv("CALC_DOTENV_PROBE", "")
	os.Unsetenv("CALC_DOTENV_PROBE")

	if err := loadDotEnv(); err != nil {
		t.Fatalf("loading dotenv: %v", err)
	}

	if got := os.Getenv("CALC_LOG_LEVEL"); got != "warn" {
		t.Fatalf("expected existing CALC_LOG_LEVEL to win, got %q", got)
	}
	if got := os.Getenv("CALC_DOTENV_PROBE"); got != "loaded" {
		t.Fatalf("expected CALC_DOTENV_PROBE from file, got %q", got)
	}
}

func TestInitTelemetryDisabled(t *testing.T) {
	cfg := config.New()

	shutdown, err := initTelemetry(context.Background(), cfg)
	if err != nil {
		t.Fatalf("init telemetry: %v", err)
	}

	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
