package observability

import (
	"context"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogging tees Logger into an OTLP log pipeline. Call after InitLogger.
func InitLogging(ctx context.Context, serviceName string) (func(context.Context) error, error) {

	exporter, err := otlploghttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx, serviceName)
	if err != nil {
		return nil, err
	}

	provider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(
			sdklog.NewBatchProcessor(exporter),
		),
	)

	otelCore := otelzap.NewCore(serviceName, otelzap.WithLoggerProvider(provider))

	// stdout and OTLP
	Logger = zap.New(zapcore.NewTee(Logger.Core(), otelCore))

	return provider.Shutdown, nil
}
