// Package telemetry installs the OpenTelemetry tracer provider used for
// invocation spans.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-logr/logr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"go.miloapis.com/mailchimp/pkg/version"
)

// Config selects the OTLP/HTTP collector. Tracing stays off unless Endpoint
// is set.
type Config struct {
	Endpoint string `env:"MAILCHIMP_OTEL_ENDPOINT"`
	Enabled  bool   `env:"MAILCHIMP_OTEL_ENABLED" envDefault:"true"`
}

const flushTimeout = 5 * time.Second

// Shutdown flushes pending spans.
type Shutdown func(context.Context) error

// Flush runs s with a bounded timeout and logs a failure. It is meant to be
// deferred by commands that install a provider with Setup.
func (s Shutdown) Flush(log logr.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := s(ctx); err != nil {
		log.Error(err, "Failed to flush spans")
	}
}

func noop(context.Context) error { return nil }

// Setup reads Config from the environment and installs a global tracer
// provider when tracing is enabled.
func Setup(ctx context.Context, serviceName string) (Shutdown, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return noop, fmt.Errorf("parse env: %w", err)
	}
	return SetupWithConfig(ctx, serviceName, cfg)
}

func SetupWithConfig(ctx context.Context, serviceName string, cfg Config) (Shutdown, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Version),
		),
	)
	if err != nil {
		return noop, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
