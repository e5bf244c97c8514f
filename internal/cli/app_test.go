package cli

import (
	"context"
	"testing"

	"github.com/emiliopalmerini/mlopsdemo/internal/config"
	"github.com/emiliopalmerini/mlopsdemo/internal/ports"
)

func TestAppContextFieldTypes(t *testing.T) {
	// Compile-time verification that AppContext uses port interfaces.
	var a AppContext
	var _ ports.CatalogRepository = a.Catalog //nolint:staticcheck
	var _ ports.MetricsExporter = a.Exporter  //nolint:staticcheck
}

func TestAppContextClose_NilDB(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close() on nil DB should not error, got: %v", err)
	}
}

func TestNewAppContext_InMemory(t *testing.T) {
	ctx := context.Background()
	app, err := NewAppContext(ctx, config.Default())
	if err != nil {
		t.Fatalf("NewAppContext: %v", err)
	}
	defer app.Close(ctx)

	flows, err := app.Catalog.ListFlows(ctx)
	if err != nil {
		t.Fatalf("ListFlows: %v", err)
	}
	if len(flows) != 4 {
		t.Errorf("expected 4 seeded flows, got %d", len(flows))
	}

	store := app.Sessions()
	defer store.Close()
	if store.Len() != 0 {
		t.Errorf("expected empty session store, got %d", store.Len())
	}
}
