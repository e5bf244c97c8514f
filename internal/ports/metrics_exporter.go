package ports

import (
	"context"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// MetricsExporter publishes the simulated dashboard values to an external
// observability system.
type MetricsExporter interface {
	// RecordMetrics stores the latest value of every card shown by view.
	RecordMetrics(ctx context.Context, view domain.ViewID, metrics []domain.Metric)
	RecordViewMount(ctx context.Context, view domain.ViewID)
	RecordSimulatorRun(ctx context.Context, flowID string)
	RecordSimulatorStep(ctx context.Context, flowID string, step int)
	// RecordSessions adjusts the number of live browser sessions.
	RecordSessions(ctx context.Context, delta int64)
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}
