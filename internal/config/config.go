// Package config defines the calculator service configuration and how it is
// loaded from defaults, an optional YAML file and CALC_* environment variables.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address. All interfaces, port 5000 by default.
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// ServiceName is reported on telemetry resources.
	ServiceName string `koanf:"service_name"`

	// TelemetryEnabled turns on OTLP export of traces, metrics and logs.
	TelemetryEnabled bool `koanf:"telemetry_enabled"`

	// ShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// ReadHeaderTimeout is passed to http.Server.
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:              "0.0.0.0:5000",
		LogLevel:          "info",
		ServiceName:       "calculator-api",
		TelemetryEnabled:  false,
		ShutdownTimeout:   5 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
