package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"calculator-api/internal/config"
	"calculator-api/internal/observability"
	"calculator-api/internal/server"

	"go.uber.org/zap"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Tracing, metrics, logs export
	telemetryShutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Fatal("telemetry init failed", zap.Error(err))
	}
	defer telemetryShutdown(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.NewRouter(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Addr),
			zap.Bool("telemetry_enabled", cfg.TelemetryEnabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	waitForShutdown(srv, cfg)
}

func waitForShutdown(srv *http.Server, cfg *config.Config) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	sig := <-stop
	observability.Logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		observability.Logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
