package session

import (
	"context"
	"testing"
	"time"

	"github.com/emiliopalmerini/mlopsdemo/internal/domain"
)

func TestStore_GetOrCreate(t *testing.T) {
	st := testStore(t, &fakeCatalog{}, &countingExporter{}, &clock{})
	ctx := context.Background()

	a, created := st.GetOrCreate(ctx, "")
	if !created || a.ID == "" {
		t.Fatalf("expected a new session with an id, got %+v created=%v", a, created)
	}
	b, created := st.GetOrCreate(ctx, a.ID)
	if created || b != a {
		t.Error("expected existing session to be returned")
	}
	c, created := st.GetOrCreate(ctx, "unknown")
	if !created || c.ID == "unknown" {
		t.Error("expected unknown id to yield a fresh session with a new id")
	}
	if st.Len() != 2 {
		t.Errorf("expected 2 sessions, got %d", st.Len())
	}
}

func TestStore_ReapIdle(t *testing.T) {
	exp := &countingExporter{}
	clk := &clock{now: time.Unix(0, 0)}
	st := testStore(t, &fakeCatalog{flows: flows()}, exp, clk)
	ctx := context.Background()

	idle := st.Create(ctx)
	if _, err := idle.Mount(ctx, domain.ViewWorkflows); err != nil {
		t.Fatalf("Mount: %v", err)
	}
	stepper, _ := idle.StartWorkflow(ctx)

	clk.Advance(45 * time.Second)
	active := st.Create(ctx)
	clk.Advance(30 * time.Second)

	if n := st.Reap(ctx); n != 1 {
		t.Fatalf("expected 1 reaped session, got %d", n)
	}
	if _, ok := st.Get(idle.ID); ok {
		t.Error("expected idle session removed")
	}
	if _, ok := st.Get(active.ID); !ok {
		t.Error("expected active session kept")
	}
	if stepper.State().Playing {
		t.Error("expected reaped session timers stopped")
	}
	if exp.sessions != 1 {
		t.Errorf("expected 1 live session counted, got %d", exp.sessions)
	}
}

func TestStore_Run(t *testing.T) {
	clk := &clock{now: time.Unix(0, 0)}
	st := NewStore(Deps{Catalog: &fakeCatalog{}, Now: clk.Now}, 2*time.Millisecond)
	defer st.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st.Create(ctx)
	clk.Advance(time.Second)
	go st.Run(ctx)

	deadline := time.Now().Add(2 * time.Second)
	for st.Len() != 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if st.Len() != 0 {
		t.Error("expected background reaper to remove the idle session")
	}
}
