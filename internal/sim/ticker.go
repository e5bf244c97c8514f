package sim

import (
	"context"
	"sync"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// MetricTicker owns a set of metric cards and jitters every banded value
// once per period.
type MetricTicker struct {
	mu      sync.Mutex
	initial []domain.Metric
	metrics []domain.Metric
	rng     domain.Rand
	onTick  func([]domain.Metric)
	task    *Task
}

// NewMetricTicker copies metrics; the caller's slice is never mutated.
func NewMetricTicker(metrics []domain.Metric, period time.Duration, rng domain.Rand) *MetricTicker {
	t := &MetricTicker{
		initial: domain.CloneMetrics(metrics),
		metrics: domain.CloneMetrics(metrics),
		rng:     rng,
	}
	t.task = NewTask(period, func() bool {
		t.Tick()
		return true
	})
	return t
}

// OnTick registers fn to receive a snapshot after each tick. Set it before
// Start.
func (t *MetricTicker) OnTick(fn func([]domain.Metric)) {
	t.mu.Lock()
	t.onTick = fn
	t.mu.Unlock()
}

// Tick performs one jitter step.
func (t *MetricTicker) Tick() {
	t.mu.Lock()
	for i := range t.metrics {
		m := &t.metrics[i]
		if m.Band == nil {
			continue
		}
		m.Value = m.Band.Jitter(m.Value, t.rng)
	}
	fn := t.onTick
	var snap []domain.Metric
	if fn != nil {
		snap = domain.CloneMetrics(t.metrics)
	}
	t.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

func (t *MetricTicker) Snapshot() []domain.Metric {
	t.mu.Lock()
	defer t.mu.Unlock()
	return domain.CloneMetrics(t.metrics)
}

// Reset restores the values the ticker was created with.
func (t *MetricTicker) Reset() {
	t.mu.Lock()
	t.metrics = domain.CloneMetrics(t.initial)
	t.mu.Unlock()
}

func (t *MetricTicker) Start(ctx context.Context) { t.task.Start(ctx) }
func (t *MetricTicker) Stop()                     { t.task.Stop() }
func (t *MetricTicker) Running() bool             { return t.task.Running() }
