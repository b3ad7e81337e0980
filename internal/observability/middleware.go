package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-ID"

var untracedPaths = map[string]struct{}{
	"/metrics": {},
	"/health":  {},
}

func shouldTraceRequest(r *http.Request) bool {
	_, skip := untracedPaths[r.URL.Path]
	return !skip
}

// RequestIDMiddleware stores a request ID in the context and echoes it in the
// X-Request-ID response header. A well-formed incoming ID is kept.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		requestID := r.Header.Get(RequestIDHeader)
		if !IsRequestID(requestID) {
			requestID = NewRequestID()
		}
		ctx := ContextWithRequestID(r.Context(), requestID)

		w.Header().Set(RequestIDHeader, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		ctx := r.Context()
		logger := LoggerWithTrace(ctx)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", statusOf(ww)),
			zap.String("request_id", RequestIDFromContext(ctx)),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func TracingMiddleware(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "http_request", otelhttp.WithFilter(shouldTraceRequest))
}

// HTTPMetricsMiddleware records Prometheus request counters and latencies
// labelled with the matched chi route pattern.
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		labels := []string{routePattern(r), r.Method, strconv.Itoa(statusOf(ww))}
		httpRequests.WithLabelValues(labels...).Inc()
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// routePattern keeps label cardinality bounded: unmatched paths share one label.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}
