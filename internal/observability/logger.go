package observability

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process-wide logger. It is a no-op until InitLogger runs.
var Logger = zap.NewNop()

// InitLogger builds the production JSON logger at the given level.
func InitLogger(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	Logger, err = cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx itself is attached as zap.Any("context", ctx): the otelzap bridge picks
// up any field holding a context.Context and emits the record with it, so the
// exported OTLP log carries the native TraceID/SpanID. The string fields keep
// stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
