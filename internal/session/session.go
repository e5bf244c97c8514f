// Package session holds the per-browser UI state: navigation plus the
// timers and samples of the currently mounted view.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/catalog"
	"github.com/emiliopalmerini/mlopsdemo/internal/chart"
	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
	"github.com/emiliopalmerini/mlopsdemo/internal/sim"
)

// Deps are shared by every session of a store.
type Deps struct {
	Catalog      ports.CatalogRepository
	Exporter     ports.MetricsExporter
	Logger       *slog.Logger
	MetricPeriod time.Duration
	ChartPeriod  time.Duration
	StepPeriod   time.Duration
	// Seed fixes every session's random streams. Zero means random.
	Seed uint64
	Now  func() time.Time
}

// ErrNotMounted is returned when a request addresses a view whose local
// state is not live.
var ErrNotMounted = errors.New("view not mounted")

// View is the local state of one mounted view. Only the fields the view
// needs are set.
type View struct {
	id      domain.ViewID
	metrics *sim.MetricTicker
	series  *sim.SeriesTicker
	stepper *sim.Stepper
	fraud   []domain.FraudEvent
}

func (v *View) ID() domain.ViewID { return v.id }

// Metrics returns the live overview cards.
func (v *View) Metrics() []domain.Metric {
	if v.metrics == nil {
		return nil
	}
	return v.metrics.Snapshot()
}

// Performance returns the live latency/throughput points.
func (v *View) Performance() []chart.Point {
	if v.series == nil {
		return nil
	}
	return v.series.Snapshot()
}

// Workflow returns the step simulator, nil outside the workflow view.
func (v *View) Workflow() *sim.Stepper { return v.stepper }

// FraudEvents returns the sample generated when the risk view mounted.
func (v *View) FraudEvents() []domain.FraudEvent { return v.fraud }

func (v *View) stop() {
	if v == nil {
		return
	}
	if v.metrics != nil {
		v.metrics.Stop()
	}
	if v.series != nil {
		v.series.Stop()
	}
	if v.stepper != nil {
		v.stepper.Stop()
	}
}

type Session struct {
	ID string

	deps   *Deps
	ctx    context.Context
	cancel context.CancelFunc

	// mountMu serialises Mount, Close and WithView. A view's timers are
	// started and stopped only while it is held.
	mountMu sync.Mutex

	mu       sync.Mutex
	nav      domain.NavState
	view     *View
	mounts   uint64
	lastSeen time.Time
}

func newSession(id string, deps *Deps) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		ID:       id,
		deps:     deps,
		ctx:      ctx,
		cancel:   cancel,
		nav:      domain.InitialNavState(),
		lastSeen: deps.Now(),
	}
}

// Nav returns the current navigation state.
func (s *Session) Nav() domain.NavState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nav
}

// Dispatch applies a navigation action and returns the new state.
func (s *Session) Dispatch(a domain.NavAction) domain.NavState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nav = domain.Reduce(s.nav, a)
	return s.nav
}

// Mounted returns the view whose local state is live.
func (s *Session) Mounted() domain.ViewID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		return ""
	}
	return s.view.id
}

// Mount makes view the active view, stops every timer of the previously
// mounted view and starts the new view from its initial values. The
// returned View stays valid for rendering even if another mount follows.
func (s *Session) Mount(ctx context.Context, view domain.ViewID) (*View, error) {
	view = domain.ParseViewID(string(view))

	s.mountMu.Lock()
	defer s.mountMu.Unlock()

	s.mu.Lock()
	s.mounts++
	n := s.mounts
	s.mu.Unlock()

	next, err := s.build(ctx, view, n)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.nav = domain.Reduce(s.nav, domain.SelectView{ID: view})
	prev := s.view
	s.view = next
	s.mu.Unlock()

	prev.stop()
	s.start(next)

	s.deps.Exporter.RecordViewMount(ctx, view)
	s.deps.Logger.Debug("view mounted", "session", s.ID, "view", view)
	return next, nil
}

// Current returns the local state of id. It never mounts: ErrNotMounted
// is returned when another view is live.
func (s *Session) Current(id domain.ViewID) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil || s.view.id != id {
		return nil, ErrNotMounted
	}
	return s.view, nil
}

// WithView runs fn against the local state of id while no mount can
// replace it.
func (s *Session) WithView(id domain.ViewID, fn func(*View) error) error {
	s.mountMu.Lock()
	defer s.mountMu.Unlock()

	v, err := s.Current(id)
	if err != nil {
		return err
	}
	return fn(v)
}

func (s *Session) build(ctx context.Context, view domain.ViewID, mount uint64) (*View, error) {
	v := &View{id: view}
	switch view {
	case domain.ViewOverview:
		v.metrics = sim.NewMetricTicker(catalog.OverviewMetrics(), s.deps.MetricPeriod, s.rand(mount, 1))
		v.metrics.OnTick(func(ms []domain.Metric) {
			s.deps.Exporter.RecordMetrics(s.ctx, domain.ViewOverview, ms)
		})
		v.series = sim.NewSeriesTicker(catalog.PerformancePoints(), catalog.LatencyBands, s.deps.ChartPeriod, s.rand(mount, 2))
	case domain.ViewWorkflows:
		flows, err := s.deps.Catalog.ListFlows(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading flows: %w", err)
		}
		v.stepper = sim.NewStepper(s.ctx, flows, s.deps.StepPeriod)
		v.stepper.OnStep(func(st sim.StepState) {
			s.deps.Exporter.RecordSimulatorStep(s.ctx, st.FlowID, st.Current)
		})
	case domain.ViewRiskOps:
		v.fraud = catalog.FraudEvents(s.rand(mount, 3), s.deps.Now(), catalog.FraudEventCount)
	case domain.ViewDataScientist, domain.ViewMLOps, domain.ViewExecutive:
	}
	return v, nil
}

func (s *Session) start(v *View) {
	if v.metrics != nil {
		s.deps.Exporter.RecordMetrics(s.ctx, v.id, v.metrics.Snapshot())
		v.metrics.Start(s.ctx)
	}
	if v.series != nil {
		v.series.Start(s.ctx)
	}
}

// rand returns an independent stream per mount and purpose. With a fixed
// seed the streams are reproducible.
func (s *Session) rand(mount, stream uint64) *rand.Rand {
	if s.deps.Seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(s.deps.Seed, mount<<8|stream))
}

// Metrics returns the live overview cards of the mounted overview.
func (s *Session) Metrics() ([]domain.Metric, error) {
	v, err := s.Current(domain.ViewOverview)
	if err != nil {
		return nil, err
	}
	return v.Metrics(), nil
}

// Performance returns the live latency/throughput points of the mounted
// overview.
func (s *Session) Performance() ([]chart.Point, error) {
	v, err := s.Current(domain.ViewOverview)
	if err != nil {
		return nil, err
	}
	return v.Performance(), nil
}

// Workflow returns the step simulator of the mounted workflow view.
func (s *Session) Workflow() (*sim.Stepper, error) {
	v, err := s.Current(domain.ViewWorkflows)
	if err != nil {
		return nil, err
	}
	return v.stepper, nil
}

// StartWorkflow starts a simulator run and counts it. The run is started
// under the mount lock so a concurrent mount cannot orphan its timer.
func (s *Session) StartWorkflow(ctx context.Context) (*sim.Stepper, error) {
	var st *sim.Stepper
	err := s.WithView(domain.ViewWorkflows, func(v *View) error {
		st = v.stepper
		if st.Start() {
			s.deps.Exporter.RecordSimulatorRun(ctx, st.State().FlowID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// FraudEvents returns the sample generated when the risk view mounted.
func (s *Session) FraudEvents() ([]domain.FraudEvent, error) {
	v, err := s.Current(domain.ViewRiskOps)
	if err != nil {
		return nil, err
	}
	return v.fraud, nil
}

// Snapshot is a read-only view of a session. It never mounts anything.
type Snapshot struct {
	ID       string
	Nav      domain.NavState
	Mounted  domain.ViewID
	Metrics  []domain.Metric
	Workflow *sim.StepState
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	snap := Snapshot{ID: s.ID, Nav: s.nav}
	v := s.view
	s.mu.Unlock()

	if v == nil {
		return snap
	}
	snap.Mounted = v.id
	if v.metrics != nil {
		snap.Metrics = v.metrics.Snapshot()
	}
	if v.stepper != nil {
		st := v.stepper.State()
		snap.Workflow = &st
	}
	return snap
}

// Touch records activity at now.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.deps.Now()
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Close stops every timer owned by the session.
func (s *Session) Close() {
	s.cancel()
	s.mountMu.Lock()
	defer s.mountMu.Unlock()
	s.mu.Lock()
	v := s.view
	s.view = nil
	s.mu.Unlock()
	v.stop()
}
