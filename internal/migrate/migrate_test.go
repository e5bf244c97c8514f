package migrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "github.com/tursodatabase/go-libsql"
)

func TestSplitSQL(t *testing.T) {
	got := SplitSQL("CREATE TABLE a (x INT);\n\n  ;INSERT INTO a VALUES (1);  ")
	if len(got) != 2 {
		t.Fatalf("expected 2 statements, got %d: %q", len(got), got)
	}
	if got[1] != "INSERT INTO a VALUES (1)" {
		t.Errorf("expected trimmed statement, got %q", got[1])
	}
}

func TestLoadFrom_SortsAndPairs(t *testing.T) {
	fsys := fstest.MapFS{
		"002_seed.up.sql":     {Data: []byte("INSERT")},
		"001_schema.up.sql":   {Data: []byte("CREATE")},
		"001_schema.down.sql": {Data: []byte("DROP")},
		"README.md":           {Data: []byte("ignored")},
	}

	ms, err := loadFrom(fsys)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if len(ms) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(ms))
	}
	if ms[0].Version != 1 || ms[0].DownSQL != "DROP" {
		t.Errorf("expected version 1 with down SQL, got %+v", ms[0])
	}
	if ms[1].Version != 2 || ms[1].DownSQL != "" {
		t.Errorf("expected version 2 without down SQL, got %+v", ms[1])
	}
}

func TestRunAllAndRollback(t *testing.T) {
	db, err := sql.Open("libsql", "file::memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if err := RunAll(ctx, db); err != nil {
		t.Fatalf("second RunAll should be a no-op: %v", err)
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM experiments`).Scan(&n); err != nil {
		t.Fatalf("count experiments: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 seeded experiments, got %d", n)
	}

	all, _ := LoadMigrations()
	v, dirty, err := GetCurrentVersion(ctx, db)
	if err != nil || dirty || v != all[len(all)-1].Version {
		t.Errorf("expected clean version %d, got %d dirty=%v err=%v", all[len(all)-1].Version, v, dirty, err)
	}

	if err := RollbackAll(ctx, db); err != nil {
		t.Fatalf("RollbackAll: %v", err)
	}
	if v, _, _ := GetCurrentVersion(ctx, db); v != 0 {
		t.Errorf("expected version 0 after rollback, got %d", v)
	}
}
