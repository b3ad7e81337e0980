package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "CALC_"
	envConfigPath = "CALC_CONFIG"
)

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file if CALC_CONFIG is set
//  3. env (prefix CALC_), e.g. CALC_ADDR, CALC_LOG_LEVEL
//  4. the standard OTEL_SERVICE_NAME / OTEL_EXPORTER_OTLP_ENDPOINT variables
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(envConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: unmarshal: %w", ErrLoadConfig, err)
	}

	if name := os.Getenv("OTEL_SERVICE_NAME"); name != "" {
		cfg.ServiceName = name
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		cfg.TelemetryEnabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.ReadHeaderTimeout <= 0 {
		return fmt.Errorf("%w: read_header_timeout must be positive", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
