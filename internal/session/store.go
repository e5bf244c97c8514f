package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/otel"
	"github.com/emiliopalmerini/mlopsdemo/internal/catalog"
)

// Store owns every live session and reaps idle ones.
type Store struct {
	deps *Deps
	ttl  time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewStore(deps Deps, ttl time.Duration) *Store {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Exporter == nil {
		deps.Exporter = otel.NewNoOpExporter()
	}
	if deps.MetricPeriod <= 0 {
		deps.MetricPeriod = catalog.MetricPeriod
	}
	if deps.ChartPeriod <= 0 {
		deps.ChartPeriod = catalog.ChartPeriod
	}
	if deps.StepPeriod <= 0 {
		deps.StepPeriod = catalog.StepPeriod
	}
	return &Store{
		deps:     &deps,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session with id and marks it active.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if ok {
		sess.Touch()
	}
	return sess, ok
}

// Create starts a new session with a fresh id.
func (s *Store) Create(ctx context.Context) *Session {
	sess := newSession(uuid.NewString(), s.deps)

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	s.deps.Exporter.RecordSessions(ctx, 1)
	s.deps.Logger.Debug("session created", "session", sess.ID)
	return sess
}

// GetOrCreate returns the session with id, or a new one when id is unknown.
func (s *Store) GetOrCreate(ctx context.Context, id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}
	return s.Create(ctx), true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Reap closes sessions idle for longer than the TTL and returns how many
// were removed.
func (s *Store) Reap(ctx context.Context) int {
	now := s.deps.Now()

	var idle []*Session
	s.mu.Lock()
	for id, sess := range s.sessions {
		if sess.idleSince(now) > s.ttl {
			idle = append(idle, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range idle {
		sess.Close()
		s.deps.Exporter.RecordSessions(ctx, -1)
		s.deps.Logger.Debug("session reaped", "session", sess.ID)
	}
	return len(idle)
}

// Run reaps idle sessions until ctx is done.
func (s *Store) Run(ctx context.Context) {
	interval := s.ttl / 2
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.Reap(ctx); n > 0 {
				s.deps.Logger.Info("reaped idle sessions", "count", n, "live", s.Len())
			}
		case <-ctx.Done():
			return
		}
	}
}

// Close stops every session.
func (s *Store) Close() {
	s.mu.Lock()
	all := s.sessions
	s.sessions = make(map[string]*Session)
	s.mu.Unlock()

	for _, sess := range all {
		sess.Close()
	}
}
