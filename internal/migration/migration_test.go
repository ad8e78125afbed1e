package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql":   {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
		"002_notes.sql":  {Data: []byte("CREATE TABLE notes (date TEXT PRIMARY KEY);")},
		"ignore_me.txt":  {Data: []byte("not a migration")},
	}

	runner := New(db, fsys)
	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if applied != 2 {
		t.Errorf("applied %d migrations, want 2", applied)
	}

	version, err := runner.Current()
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if version != 2 {
		t.Errorf("schema version = %d, want 2", version)
	}

	// Both tables exist
	for _, table := range []string{"habits", "notes"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("table %s missing after migration (err=%v)", table, err)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
	}

	runner := New(db, fsys)
	if _, err := runner.Apply(nil); err != nil {
		t.Fatalf("first Apply returned error: %v", err)
	}

	applied, err := runner.Apply(nil)
	if err != nil {
		t.Fatalf("second Apply returned error: %v", err)
	}
	if applied != 0 {
		t.Errorf("second Apply applied %d migrations, want 0", applied)
	}
}

func TestApplyRejectsNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits (id TEXT PRIMARY KEY);")},
	}

	runner := New(db, fsys)
	if err := runner.ensureVersionTable(); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (9)"); err != nil {
		t.Fatal(err)
	}

	if _, err := runner.Apply(nil); err == nil {
		t.Error("Apply accepted a database newer than the shipped migrations")
	}
	if err := runner.Validate(); err == nil {
		t.Error("Validate accepted a database newer than the shipped migrations")
	}
}

func TestLoadRejectsBadFilenames(t *testing.T) {
	db := openTestDB(t)

	for _, name := range []string{"init.sql", "abc_init.sql", "000_init.sql"} {
		fsys := fstest.MapFS{name: {Data: []byte("SELECT 1;")}}
		if _, err := New(db, fsys).Apply(nil); err == nil {
			t.Errorf("Apply accepted invalid migration filename %q", name)
		}
	}
}

func TestFailedMigrationRollsBack(t *testing.T) {
	db := openTestDB(t)
	fsys := fstest.MapFS{
		"001_bad.sql": {Data: []byte("CREATE TABLE broken (;")},
	}

	runner := New(db, fsys)
	if _, err := runner.Apply(nil); err == nil {
		t.Fatal("Apply accepted invalid SQL")
	}

	version, err := runner.Current()
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if version != 0 {
		t.Errorf("failed migration bumped version to %d, want 0", version)
	}
}
