package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/franz/launch-history/internal/util"
)

// Export returns the entire backing file as an opaque byte blob. The
// WAL is checkpointed into the main file first so the blob is
// self-contained. Whole-file only; there is no incremental export.
func (s *Store) Export() ([]byte, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return nil, fmt.Errorf("failed to checkpoint before export: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database file: %w", err)
	}

	return data, nil
}

// Import replaces the backing file with the given blob and invalidates
// the cached connection so the next operation reopens against the new
// content. The blob is written to a temp file and moved into place with
// an atomic rename, so a failed import never leaves a half-written file
// as the current database.
//
// Callers must quiesce outstanding operations before importing.
func (s *Store) Import(data []byte) error {
	if err := s.Invalidate(); err != nil {
		return fmt.Errorf("failed to release connection before import: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".restore-*.db")
	if err != nil {
		return fmt.Errorf("%w: failed to stage snapshot: %v", util.ErrMalformedSnapshot, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to write snapshot: %v", util.ErrMalformedSnapshot, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to sync snapshot: %v", util.ErrMalformedSnapshot, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to close snapshot: %v", util.ErrMalformedSnapshot, err)
	}

	err = util.WithRetry(nil, func() error {
		return os.Rename(tmpPath, s.path)
	})
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: failed to replace database file: %v", util.ErrMalformedSnapshot, err)
	}

	// Sidecars belong to the replaced file; stale ones would corrupt
	// the restored database on open
	os.Remove(s.path + "-wal")
	os.Remove(s.path + "-shm")

	if err := s.CheckIntegrity(); err != nil {
		return fmt.Errorf("%w: restored database failed verification: %v", util.ErrMalformedSnapshot, err)
	}

	return nil
}
