package sim

import (
	"context"
	"sync"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

// SeriesTicker keeps a line chart's points fresh by jittering the last
// point on every period.
type SeriesTicker struct {
	mu     sync.Mutex
	points []chart.Point
	bands  []domain.Band
	rng    domain.Rand
	task   *Task
}

func NewSeriesTicker(points []chart.Point, bands []domain.Band, period time.Duration, rng domain.Rand) *SeriesTicker {
	t := &SeriesTicker{
		points: chart.ClonePoints(points),
		bands:  bands,
		rng:    rng,
	}
	t.task = NewTask(period, func() bool {
		t.Tick()
		return true
	})
	return t
}

func (t *SeriesTicker) Tick() {
	t.mu.Lock()
	t.points = chart.JitterLast(t.points, t.bands, t.rng)
	t.mu.Unlock()
}

func (t *SeriesTicker) Snapshot() []chart.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return chart.ClonePoints(t.points)
}

func (t *SeriesTicker) Start(ctx context.Context) { t.task.Start(ctx) }
func (t *SeriesTicker) Stop()                     { t.task.Stop() }
