package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/config"
)

// ServiceVersion попадает в атрибуты ресурса
const ServiceVersion = "1.0.0"

var Tracer trace.Tracer

// InitTracing инициализирует OpenTelemetry трейсинг.
// Возвращает функцию shutdown, которая сбрасывает накопленные спаны.
func InitTracing(cfg *config.Config, logger *zap.Logger) (func(context.Context) error, error) {
	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.OTELServiceName),
			semconv.ServiceVersionKey.String(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var exporter sdktrace.SpanExporter

	if cfg.OTELEndpoint != "" {
		exporter, err = otlptracehttp.New(context.Background(),
			otlptracehttp.WithEndpoint(cfg.OTELEndpoint),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		logger.Debug("OpenTelemetry OTLP export enabled", zap.String("endpoint", cfg.OTELEndpoint))
	} else {
		// Без OTEL_ENDPOINT спаны никуда не отправляются
		exporter = &noopExporter{}
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	Tracer = otel.Tracer(cfg.OTELServiceName)

	logger.Debug("OpenTelemetry initialized", zap.String("service", cfg.OTELServiceName))
	return tp.Shutdown, nil
}

// noopExporter - пустой экспортер для локального запуска
type noopExporter struct{}

func (e *noopExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	return nil
}

func (e *noopExporter) Shutdown(ctx context.Context) error {
	return nil
}
