// Package store implements the durable usage-history store: launch
// history, pinned shortcuts, record tags and badge counts, all behind a
// single SQLite connection. The ranking queries live in internal/rank
// and only read through the handle this package owns.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/franz/launch-history/internal/util"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	currentSchemaVersion = 2
)

// Store owns the physical database file and its single connection.
//
// The connection is opened eagerly by Open and re-opened lazily after
// Invalidate. Writes must be serialized by the caller (one background
// worker); reads may interleave with writes but see no isolation
// beyond single-row atomicity.
type Store struct {
	path string
	db   *sql.DB
	now  func() time.Time
}

// OpenOptions holds options for opening a database
type OpenOptions struct {
	Clock func() time.Time // Timestamp source, defaults to time.Now
}

// Open opens or creates the database at the given path with default options
func Open(path string) (*Store, error) {
	return OpenWithOptions(path, nil)
}

// OpenWithOptions opens or creates the database with custom options
func OpenWithOptions(path string, opts *OpenOptions) (*Store, error) {
	if opts == nil {
		opts = &OpenOptions{}
	}

	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	store := &Store{path: path, now: now}

	if _, err := store.conn(); err != nil {
		return nil, err
	}

	return store, nil
}

// conn returns the cached connection, opening it if Invalidate dropped
// it (or it was never opened). Not safe against concurrent callers;
// the serialization contract covers handle acquisition too.
func (s *Store) conn() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}

	// Single connection: SQLite does not tolerate concurrent writers
	// without external coordination
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s.db = db

	if err := s.applyPragmas(); err != nil {
		db.Close()
		s.db = nil
		return nil, fmt.Errorf("%w: failed to apply pragmas: %v", util.ErrStorageUnavailable, err)
	}

	if err := s.migrate(); err != nil {
		db.Close()
		s.db = nil
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return s.db, nil
}

// applyPragmas configures the fresh connection
func (s *Store) applyPragmas() error {
	pragmas := []string{
		// WAL keeps readers unblocked during the single writer's commits
		"PRAGMA journal_mode = WAL",

		"PRAGMA busy_timeout = 5000",

		// Query prefix matching is contractually case-sensitive;
		// SQLite LIKE is ASCII-case-insensitive unless told otherwise
		"PRAGMA case_sensitive_like = ON",
	}

	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Invalidate drops the cached connection so the next operation reopens
// against whatever file is at the path. Used after the backing file is
// replaced wholesale (snapshot restore). Callers must quiesce all
// outstanding operations first.
func (s *Store) Invalidate() error {
	return s.Close()
}

// Path returns the location of the backing file
func (s *Store) Path() string {
	return s.path
}

// Now returns the store's current timestamp in milliseconds
func (s *Store) Now() int64 {
	return s.now().UnixMilli()
}

// DB returns the underlying connection for read-only custom queries
// (the ranking engine issues its scans through this)
func (s *Store) DB() (*sql.DB, error) {
	return s.conn()
}

// SQLiteVersion returns the SQLite version string
func SQLiteVersion() string {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return ""
	}
	defer db.Close()

	var version string
	err = db.QueryRow("SELECT sqlite_version()").Scan(&version)
	if err != nil {
		return ""
	}
	return version
}

// CheckIntegrity runs PRAGMA integrity_check on the database
func (s *Store) CheckIntegrity() error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	var result string
	err = db.QueryRow("PRAGMA integrity_check").Scan(&result)
	if err != nil {
		return fmt.Errorf("integrity check query failed: %w", err)
	}

	if result != "ok" {
		return fmt.Errorf("integrity check failed: %s", result)
	}

	return nil
}

// migrate applies database migrations
func (s *Store) migrate() error {
	version, err := s.getSchemaVersion()
	if err != nil {
		return err
	}

	if version >= currentSchemaVersion {
		// Already at current version
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Apply schema v1
	if version < 1 {
		if _, err := tx.Exec(schemaV1); err != nil {
			return fmt.Errorf("failed to apply schema v1: %w", err)
		}
		if err := s.setSchemaVersion(tx, 1); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	// Apply schema v2 - ranking-query indexes
	if version < 2 {
		if _, err := tx.Exec(schemaV2); err != nil {
			return fmt.Errorf("failed to apply schema v2: %w", err)
		}
		if err := s.setSchemaVersion(tx, 2); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
	}

	// Future migrations would go here:
	// if version < 3 { ... }

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}

	return nil
}

// getSchemaVersion returns the current schema version
func (s *Store) getSchemaVersion() (int, error) {
	var exists int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&exists)
	if err != nil {
		return 0, err
	}

	if exists == 0 {
		// No schema yet
		return 0, nil
	}

	var version int
	err = s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, err
	}

	return version, nil
}

// setSchemaVersion records a schema version in a transaction
func (s *Store) setSchemaVersion(tx *sql.Tx, version int) error {
	_, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", version)
	return err
}

// Transaction executes a function within a transaction
func (s *Store) Transaction(fn func(*sql.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
