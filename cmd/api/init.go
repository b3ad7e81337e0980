package main

import (
	"context"
	"errors"

	"calculator-api/internal/calculator"
	"calculator-api/internal/config"
	"calculator-api/internal/observability"
)

// initTelemetry starts OTLP tracing, metrics and log export when enabled and
// registers the calculator's metric instruments either way. The returned
// function shuts every started provider down.
func initTelemetry(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error
	shutdown := func(ctx context.Context) error {
		var errs []error
		for _, fn := range shutdowns {
			errs = append(errs, fn(ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.TelemetryEnabled {
		inits := []func(context.Context, string) (func(context.Context) error, error){
			observability.InitTracing,
			observability.InitMetrics,
			observability.InitLogging,
		}
		for _, start := range inits {
			fn, err := start(ctx, cfg.ServiceName)
			if err != nil {
				_ = shutdown(ctx)
				return nil, err
			}
			shutdowns = append(shutdowns, fn)
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
