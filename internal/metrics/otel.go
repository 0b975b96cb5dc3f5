package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "scoreboard-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx                context.Context
	operations         metric.Int64Counter
	operationErrors    metric.Int64Counter
	operationLatencyMs metric.Float64Histogram
	activeMatches      metric.Int64UpDownCounter
	replaySteps        metric.Int64Counter
	replayErrors       metric.Int64Counter
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	operations, err := meter.Int64Counter("scoreboard_operations_total")
	if err != nil {
		return nil, err
	}
	operationErrors, err := meter.Int64Counter("scoreboard_operation_errors_total")
	if err != nil {
		return nil, err
	}
	operationLatency, err := meter.Float64Histogram("scoreboard_operation_duration_ms")
	if err != nil {
		return nil, err
	}
	activeMatches, err := meter.Int64UpDownCounter("scoreboard_active_matches")
	if err != nil {
		return nil, err
	}
	replaySteps, err := meter.Int64Counter("replay_steps_total")
	if err != nil {
		return nil, err
	}
	replayErrors, err := meter.Int64Counter("replay_step_errors_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:                context.Background(),
		operations:         operations,
		operationErrors:    operationErrors,
		operationLatencyMs: operationLatency,
		activeMatches:      activeMatches,
		replaySteps:        replaySteps,
		replayErrors:       replayErrors,
	}, nil
}

func (o *otelInstruments) recordOperation(operation, errKind string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrOperation, operation)}
	o.operations.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	o.operationLatencyMs.Record(o.ctx, float64(duration.Microseconds())/1000, metric.WithAttributes(attrs...))
	if errKind != "" {
		attrs = append(attrs, attribute.String(AttrErrorKind, errKind))
		o.operationErrors.Add(o.ctx, 1, metric.WithAttributes(attrs...))
	}
}

func (o *otelInstruments) recordActiveDelta(delta int64) {
	if o == nil {
		return
	}
	o.activeMatches.Add(o.ctx, delta)
}

func (o *otelInstruments) recordReplayStep(action string, err error) {
	if o == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String(AttrAction, action))
	o.replaySteps.Add(o.ctx, 1, attrs)
	if err != nil {
		o.replayErrors.Add(o.ctx, 1, attrs)
	}
}
