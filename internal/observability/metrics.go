package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// HTTP request metrics, scraped from /metrics.
var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calculator",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calculator",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)
)

// InitMetrics installs a global OTel meter provider exporting over OTLP.
func InitMetrics(ctx context.Context, serviceName string) (func(context.Context) error, error) {

	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter),
		),
	)

	otel.SetMeterProvider(provider)

	return provider.Shutdown, nil
}

func PrometheusHandler() http.Handler {
	return promhttp.Handler()
}
