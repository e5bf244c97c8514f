package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/emiliopalmerini/mlopsdemo/internal/logging"
	"github.com/emiliopalmerini/mlopsdemo/migrations"
)

// Migration represents a single database migration with up and down SQL.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// EnsureMigrationsTable creates the schema_migrations table if it doesn't exist.
func EnsureMigrationsTable(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty INTEGER NOT NULL DEFAULT 0
		)
	`)
	return err
}

// GetCurrentVersion returns the current migration version and dirty state.
func GetCurrentVersion(ctx context.Context, db *sql.DB) (int, bool, error) {
	var version int
	var dirty int

	err := db.QueryRowContext(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).Scan(&version, &dirty)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return version, dirty == 1, nil
}

// SetVersion sets the migration version and dirty state.
func SetVersion(ctx context.Context, db *sql.DB, version int, dirty bool) error {
	dirtyInt := 0
	if dirty {
		dirtyInt = 1
	}

	_, err := db.ExecContext(ctx, `DELETE FROM schema_migrations`)
	if err != nil {
		return err
	}

	if version > 0 {
		_, err = db.ExecContext(ctx, `INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirtyInt)
	}
	return err
}

var upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)

// LoadMigrations reads all embedded migration files and returns them sorted by version.
func LoadMigrations() ([]Migration, error) {
	return loadFrom(migrations.FS)
}

func loadFrom(fsys fs.FS) ([]Migration, error) {
	var result []Migration

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		matches := upPattern.FindStringSubmatch(filepath.Base(path))
		if matches == nil {
			return nil
		}

		version, _ := strconv.Atoi(matches[1])
		name := matches[2]

		upSQL, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		downPath := fmt.Sprintf("%03d_%s.down.sql", version, name)
		downSQL, err := fs.ReadFile(fsys, downPath)
		if err != nil {
			downSQL = nil
		}

		result = append(result, Migration{
			Version: version,
			Name:    name,
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Version < result[j].Version
	})

	return result, nil
}

// RunMigration executes a single migration (up or down).
func RunMigration(ctx context.Context, db *sql.DB, m Migration, up bool) error {
	direction := "up"
	sqlContent := m.UpSQL
	if !up {
		direction = "down"
		sqlContent = m.DownSQL
	}

	logging.FromContext(ctx).Debug("migration", "direction", direction, "version", m.Version, "name", m.Name)

	targetVersion := m.Version
	if !up {
		targetVersion = m.Version - 1
	}
	if err := SetVersion(ctx, db, m.Version, true); err != nil {
		return fmt.Errorf("failed to set dirty flag: %w", err)
	}

	for _, stmt := range SplitSQL(sqlContent) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute migration %d %s: %w\nSQL: %s", m.Version, direction, err, stmt)
		}
	}

	if err := SetVersion(ctx, db, targetVersion, false); err != nil {
		return fmt.Errorf("failed to clear dirty flag: %w", err)
	}

	return nil
}

// SplitSQL splits a SQL string by semicolons and drops empty statements.
// Seed data must not contain semicolons inside string literals.
func SplitSQL(sql string) []string {
	var out []string
	for _, stmt := range strings.Split(sql, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

// RunAll runs all pending migrations on the provided database.
func RunAll(ctx context.Context, db *sql.DB) error {
	if err := EnsureMigrationsTable(ctx, db); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	currentVersion, dirty, err := GetCurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	allMigrations, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	applied := 0
	for _, m := range allMigrations {
		if m.Version <= currentVersion {
			continue
		}

		if err := RunMigration(ctx, db, m, true); err != nil {
			return err
		}
		applied++
	}

	if applied > 0 {
		logging.FromContext(ctx).Info("catalog migrated", "applied", applied)
	}
	return nil
}

// RollbackAll runs every down migration from the current version to 0.
func RollbackAll(ctx context.Context, db *sql.DB) error {
	currentVersion, _, err := GetCurrentVersion(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	allMigrations, err := LoadMigrations()
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	for i := len(allMigrations) - 1; i >= 0; i-- {
		m := allMigrations[i]
		if m.Version > currentVersion {
			continue
		}
		if m.DownSQL == "" {
			return fmt.Errorf("no down migration for version %d", m.Version)
		}
		if err := RunMigration(ctx, db, m, false); err != nil {
			return err
		}
	}
	return nil
}
