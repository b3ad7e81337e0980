package calculator

import (
	"context"
	"errors"
	"net/http"
	"time"

	"calculator-api/internal/handlers"
	"calculator-api/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("calculator")

// Arithmetic returns the GET /<op>?a=..&b=.. handler for op.
func Arithmetic(op Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "calculator."+string(op),
			trace.WithAttributes(
				attribute.String("calculator.operation", string(op)),
				attribute.String("calculator.interface", "query"),
				attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
			),
		)
		defer span.End()
		logger := observability.LoggerWithTrace(ctx)

		a, b, err := QueryOperands(ParseQuery(r.URL.RawQuery))
		if err != nil {
			fail(ctx, span, logger, w, string(op), err)
			return
		}

		compute(ctx, span, logger, w, op, a, b)
	}
}

// Calc handles POST /calc with a {"op","a","b"} JSON body.
func Calc(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "calculator.calc",
		trace.WithAttributes(
			attribute.String("calculator.interface", "json"),
			attribute.String("request.id", observability.RequestIDFromContext(r.Context())),
		),
	)
	defer span.End()
	logger := observability.LoggerWithTrace(ctx)

	req := DecodeBody(w, r)

	op, err := req.Operation()
	if err != nil {
		fail(ctx, span, logger, w, "calc", err)
		return
	}
	span.SetAttributes(attribute.String("calculator.operation", string(op)))

	a, b, err := req.Operands()
	if err != nil {
		fail(ctx, span, logger, w, string(op), err)
		return
	}

	compute(ctx, span, logger, w, op, a, b)
}

// compute applies op, records metrics and the span result, and writes the
// success envelope.
func compute(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, op Operation, a, b float64) {
	span.SetAttributes(
		attribute.Float64("calculator.operand.a", a),
		attribute.Float64("calculator.operand.b", b),
	)

	start := time.Now()
	result, err := op.Apply(a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		fail(ctx, span, logger, w, string(op), err)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", string(op)))
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsed, attrs)
	resultGauge.Record(ctx, result, attrs)

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.Float64("result", result),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("calculator.result", result))
	span.SetStatus(codes.Ok, "")

	logger.Info("calculator operation completed",
		zap.String("operation", string(op)),
		zap.Float64("a", a),
		zap.Float64("b", b),
		zap.Float64("result", result),
		zap.String("request_id", observability.RequestIDFromContext(ctx)),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, CalcResponse{
		Operation: op,
		A:         Number(a),
		B:         Number(b),
		Result:    Number(result),
	})
}

func fail(ctx context.Context, span trace.Span, logger *zap.Logger, w http.ResponseWriter, opName string, err error) {
	var calcErr *Error
	if !errors.As(err, &calcErr) {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "internal",
			http.StatusText(http.StatusInternalServerError), err, http.StatusInternalServerError, w)
		return
	}

	observability.RecordError(ctx, span, logger, errorCounter, opName, calcErr.Kind.String(),
		calcErr.Message, err, http.StatusBadRequest, w)
}
