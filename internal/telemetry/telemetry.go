// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "glulands"
	serviceVersion = "0.4.2"
)

// metricInterval is how often counters are pushed to the collector.
const metricInterval = 30 * time.Second

// exporting is set once Setup has installed the tracer and meter providers.
var exporting atomic.Bool

// Setup initializes OpenTelemetry with OTLP HTTP trace and metric exporters.
// It reads configuration from standard OTEL_* environment variables:
//   - OTEL_EXPORTER_OTLP_ENDPOINT: Honeycomb endpoint (https://api.honeycomb.io)
//   - OTEL_EXPORTER_OTLP_HEADERS: Headers including x-honeycomb-team=<api-key>
//
// The session id is attached to every span as a resource attribute.
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, sessionID string) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}
	metricExporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Built standalone; merging with resource.Default() clashes on schema URL.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("service.instance.id", sessionID),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	mp := NewMeterProvider(
		sdkmetric.NewPeriodicReader(metricExporter, sdkmetric.WithInterval(metricInterval)),
		res,
	)

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	exporting.Store(true)

	return func(ctx context.Context) error {
		exporting.Store(false)
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx))
	}, nil
}

// NewMeterProvider builds a meter provider that collects through reader. A nil
// resource uses the SDK default.
func NewMeterProvider(reader sdkmetric.Reader, res *resource.Resource) *sdkmetric.MeterProvider {
	opts := []sdkmetric.Option{sdkmetric.WithReader(reader)}
	if res != nil {
		opts = append(opts, sdkmetric.WithResource(res))
	}
	return sdkmetric.NewMeterProvider(opts...)
}

// Enabled reports whether spans are being exported.
func Enabled() bool {
	return exporting.Load()
}

// Tracer returns a named tracer for the given component, or a no-op tracer
// when Setup has not run or failed.
func Tracer(name string) trace.Tracer {
	if !Enabled() {
		return NoopTracer()
	}
	return otel.GetTracerProvider().Tracer("glulands/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("glulands/noop")
}

// Meter returns a named meter for the given component. Instruments created
// before Setup forward to the SDK provider once it is installed.
func Meter(name string) metric.Meter {
	return otel.GetMeterProvider().Meter("glulands/" + name)
}

// Counter creates an int64 counter, falling back to a no-op instrument on error
// so callers never have to nil-check.
func Counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		c, _ = metricnoop.NewMeterProvider().Meter("glulands/noop").Int64Counter(name)
	}
	return c
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
