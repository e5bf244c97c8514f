package otel

import (
	"context"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordMetrics(context.Context, domain.ViewID, []domain.Metric) {}
func (e *NoOpExporter) RecordViewMount(context.Context, domain.ViewID)                {}
func (e *NoOpExporter) RecordSimulatorRun(context.Context, string)                    {}
func (e *NoOpExporter) RecordSimulatorStep(context.Context, string, int)              {}
func (e *NoOpExporter) RecordSessions(context.Context, int64)                         {}

func (e *NoOpExporter) Close(ctx context.Context) error {
	return nil
}
