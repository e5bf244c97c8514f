package turso_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/emiliopalmerini/mlopsdemo/internal/adapters/turso"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := turso.NewDB(context.Background(), "")
	if err != nil {
		t.Fatalf("Failed to open in-memory catalog: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}
