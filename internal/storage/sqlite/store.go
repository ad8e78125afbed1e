// Package sqlite implements the storage.Store interface on a local SQLite
// database. Selected when the config path ends in .db; the JSON snapshot
// store remains the default backend.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tuncdemir/rutin/internal/migration"
	"github.com/tuncdemir/rutin/internal/models"
	"github.com/tuncdemir/rutin/migrations"
)

const themeKey = "theme"

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	return s.open()
}

// Load opens the database, creating and migrating it on first use so a fresh
// start begins with empty collections and the default theme.
func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *Store) open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.New(s.db, subFS)
	_, err = runner.Apply(nil)
	return err
}

func (s *Store) Theme() (models.Theme, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", themeKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultTheme, nil
		}
		return "", err
	}
	return models.Theme(value), nil
}

func (s *Store) SetTheme(theme models.Theme) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		themeKey, string(theme))
	return err
}

func (s *Store) SnapshotPath() string {
	return s.path
}
