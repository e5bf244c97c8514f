package turso

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/emiliopalmerini/mlopsdemo/internal/migrate"
)

// MemoryURL is an in-process database that disappears with the process.
const MemoryURL = "file::memory:?cache=shared"

// NewDB opens the catalog database at url and applies the embedded
// migrations, which also seed it. An empty url means MemoryURL.
func NewDB(ctx context.Context, url string) (*sql.DB, error) {
	if url == "" {
		url = MemoryURL
	}

	db, err := sql.Open("libsql", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := migrate.RunAll(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}

	return db, nil
}

// Reseed rolls every migration back and applies them again, restoring the
// seeded catalog in a database that outlives the process.
func Reseed(ctx context.Context, db *sql.DB) error {
	if err := migrate.RollbackAll(ctx, db); err != nil {
		return fmt.Errorf("failed to roll back catalog: %w", err)
	}
	if err := migrate.RunAll(ctx, db); err != nil {
		return fmt.Errorf("failed to reseed catalog: %w", err)
	}
	return nil
}
