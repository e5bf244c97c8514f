package otel

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

const (
	serviceName    = "mlopsdemo"
	serviceVersion = "1.0.0"
)

type gaugeKey struct {
	view domain.ViewID
	key  string
}

// Exporter exports the simulated dashboard values to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	meter          metric.Meter
	mountsTotal    metric.Int64Counter
	runsTotal      metric.Int64Counter
	stepsTotal     metric.Int64Counter
	sessionsActive metric.Int64UpDownCounter

	mu     sync.Mutex
	latest map[gaugeKey]float64
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	e, err := newExporter(provider, provider.Meter(serviceName))
	if err != nil {
		_ = provider.Shutdown(ctx)
		return nil, err
	}
	return e, nil
}

func newExporter(provider *sdkmetric.MeterProvider, meter metric.Meter) (*Exporter, error) {
	e := &Exporter{
		provider: provider,
		meter:    meter,
		latest:   make(map[gaugeKey]float64),
	}

	var err error
	_, err = meter.Float64ObservableGauge(
		"mlopsdemo_metric_value",
		metric.WithDescription("Latest simulated value of a dashboard card"),
		metric.WithFloat64Callback(e.observe),
	)
	if err != nil {
		return nil, fmt.Errorf("creating metric gauge: %w", err)
	}

	e.mountsTotal, err = meter.Int64Counter(
		"mlopsdemo_view_mounts_total",
		metric.WithDescription("Number of times a view was mounted"),
		metric.WithUnit("{mount}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating mounts counter: %w", err)
	}

	e.runsTotal, err = meter.Int64Counter(
		"mlopsdemo_simulator_runs_total",
		metric.WithDescription("Number of workflow simulator runs started"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating runs counter: %w", err)
	}

	e.stepsTotal, err = meter.Int64Counter(
		"mlopsdemo_simulator_steps_total",
		metric.WithDescription("Number of workflow simulator ticks"),
		metric.WithUnit("{step}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating steps counter: %w", err)
	}

	e.sessionsActive, err = meter.Int64UpDownCounter(
		"mlopsdemo_sessions_active",
		metric.WithDescription("Number of live browser sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	return e, nil
}

func (e *Exporter) observe(_ context.Context, o metric.Float64Observer) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for k, v := range e.latest {
		o.Observe(v, metric.WithAttributes(
			attribute.String("view", string(k.view)),
			attribute.String("metric", k.key),
		))
	}
	return nil
}

// RecordMetrics stores the latest values of the live cards for the gauge
// callback.
func (e *Exporter) RecordMetrics(_ context.Context, view domain.ViewID, metrics []domain.Metric) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, m := range metrics {
		if !m.Live() {
			continue
		}
		e.latest[gaugeKey{view: view, key: m.Key}] = m.Value
	}
}

func (e *Exporter) RecordViewMount(ctx context.Context, view domain.ViewID) {
	e.mountsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("view", string(view))))
}

func (e *Exporter) RecordSimulatorRun(ctx context.Context, flowID string) {
	e.runsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("flow", flowID)))
}

func (e *Exporter) RecordSimulatorStep(ctx context.Context, flowID string, step int) {
	e.stepsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("flow", flowID),
		attribute.Int("step", step),
	))
}

func (e *Exporter) RecordSessions(ctx context.Context, delta int64) {
	e.sessionsActive.Add(ctx, delta)
}

// Close shuts down the exporter and flushes any pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
