// ABOUTME: SQLite-backed key/value preference store using modernc.org/sqlite
// ABOUTME: Holds user preferences and persisted credential-provider sessions

package prefs

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Well-known preference keys. Values are plain strings with no schema
// versioning: "true"/"false" for the demo flag, "en"/"as" for language.
const (
	KeyDemoMode = "chai_demo_mode"
	KeyLanguage = "language"
)

// Store is a flat string-keyed persistence mechanism scoped to the
// installation. It holds user preferences (demo mode, language) and the
// credential provider's persisted session material.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open creates or opens a preference store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func Open(path string) (*Store, error) {
	logger := slog.Default().With("component", "prefs")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating storage directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &Store{db: db, logger: logger}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`)
	return err
}

// DB exposes the underlying database handle so sibling packages can keep
// their tables (dev identity users) in the same file.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Get returns the stored value for key, or ("", false) if the key is absent.
func (s *Store) Get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM prefs WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("preference read failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("writing preference %q: %w", key, err)
	}
	return nil
}

// Delete removes key from the store. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	_, err := s.db.Exec("DELETE FROM prefs WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("deleting preference %q: %w", key, err)
	}
	return nil
}

// GetBool reads key as a boolean, treating only the exact string "true" as
// true. Missing keys return the given default.
func (s *Store) GetBool(key string, def bool) bool {
	value, ok := s.Get(key)
	if !ok {
		return def
	}
	return value == "true"
}

// SetBool stores a boolean as "true"/"false".
func (s *Store) SetBool(key string, v bool) error {
	if v {
		return s.Set(key, "true")
	}
	return s.Set(key, "false")
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
