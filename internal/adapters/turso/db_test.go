package turso_test

import (
	"context"
	"testing"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/turso"
)

func TestReseed_RestoresEditedCatalog(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	repo := turso.NewCatalogRepository(db)

	if _, err := db.ExecContext(ctx, `UPDATE experiments SET name = 'edited' WHERE id = 'exp-001'`); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := db.ExecContext(ctx, `DELETE FROM features`); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := turso.Reseed(ctx, db); err != nil {
		t.Fatalf("Reseed: %v", err)
	}

	exps, err := repo.ListExperiments(ctx)
	if err != nil {
		t.Fatalf("ListExperiments: %v", err)
	}
	if len(exps) != 3 || exps[0].Name != "Fraud Detection XGBoost v2.1" {
		t.Errorf("expected seeded experiments back, got %+v", exps)
	}
	features, err := repo.ListFeatures(ctx)
	if err != nil {
		t.Fatalf("ListFeatures: %v", err)
	}
	if len(features) == 0 {
		t.Error("expected seeded features back")
	}
}
