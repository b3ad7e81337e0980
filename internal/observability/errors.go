package observability

import (
	"context"
	"net/http"

	"calculator-api/internal/handlers"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises client-error handling across domains: records the
// error on the span, increments counter labelled with the operation and error
// kind, logs with trace context, and writes the JSON error response. The
// response body carries msg only.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, kind, msg string, err error, status int, w http.ResponseWriter) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	counter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", opName),
		attribute.String("error.kind", kind),
	))

	logger.Warn(msg,
		zap.String("operation", opName),
		zap.String("error_kind", kind),
		zap.Error(err),
		zap.String("request_id", RequestIDFromContext(ctx)),
	)

	handlers.WriteError(w, status, msg)
}
