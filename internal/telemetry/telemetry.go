package telemetry

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// Metrics holds the run-level instruments recorded by the CLI driver.
type Metrics struct {
	Runs         metric.Int64Counter
	Iterations   metric.Int64Counter
	BytesScanned metric.Int64Counter
}

// Init sets up a global meter provider backed by the stdout exporter,
// so a benchmark run needs no collector endpoint. Returns a shutdown
// function that flushes collected metrics. On exporter failure the
// instruments degrade to the global no-op meter.
func Init(ctx context.Context, service string) (func(context.Context) error, Metrics) {
	exp, err := stdoutmetric.New()
	if err != nil {
		slog.Warn("metrics exporter init failed", "error", err)
		return func(context.Context) error { return nil }, instruments()
	}
	res, _ := sdkresource.Merge(sdkresource.Default(), sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(service),
	))
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)
	return mp.Shutdown, instruments()
}

func instruments() Metrics {
	meter := otel.Meter("searchbench")
	runs, _ := meter.Int64Counter("searchbench_runs_total")
	iters, _ := meter.Int64Counter("searchbench_iterations_total")
	bytesScanned, _ := meter.Int64Counter("searchbench_bytes_scanned_total")
	return Metrics{Runs: runs, Iterations: iters, BytesScanned: bytesScanned}
}
