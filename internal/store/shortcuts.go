package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/launch-history/internal/record"
)

// ShortcutRecord represents a pinned OS shortcut. PackageName may be
// empty: some shortcut sources omit the owning package, in which case
// uniqueness is enforced on the intent URI alone.
type ShortcutRecord struct {
	Name         string
	PackageName  string
	IconResource string
	IntentURI    string
	IconBlob     []byte
}

// InsertShortcut inserts a shortcut unless a duplicate already exists.
// Duplicate means same (package, intent URI) pair, or same intent URI
// when the package is absent. Returns false without writing when the
// shortcut is a duplicate. The check and the insert run in one
// transaction, so a single caller's sequential operations see them as
// one unit.
func (s *Store) InsertShortcut(shortcut *ShortcutRecord) (bool, error) {
	inserted := false

	err := s.Transaction(func(tx *sql.Tx) error {
		var exists int
		var err error

		if shortcut.PackageName != "" && shortcut.IntentURI != "" {
			err = tx.QueryRow(`
				SELECT COUNT(*) FROM shortcuts
				WHERE package = ? AND intent_uri = ?
			`, shortcut.PackageName, shortcut.IntentURI).Scan(&exists)
		} else if shortcut.IntentURI != "" {
			err = tx.QueryRow(`
				SELECT COUNT(*) FROM shortcuts
				WHERE intent_uri = ?
			`, shortcut.IntentURI).Scan(&exists)
		}
		if err != nil {
			return fmt.Errorf("failed to check for duplicate shortcut: %w", err)
		}

		if exists > 0 {
			return nil
		}

		_, err = tx.Exec(`
			INSERT INTO shortcuts (name, package, icon, intent_uri, icon_blob)
			VALUES (?, ?, ?, ?, ?)
		`, shortcut.Name, shortcut.PackageName, shortcut.IconResource,
			shortcut.IntentURI, shortcut.IconBlob)
		if err != nil {
			return fmt.Errorf("failed to insert shortcut: %w", err)
		}

		inserted = true
		return nil
	})

	return inserted, err
}

// RemoveShortcut deletes the shortcut matching the (package, intent URI)
// pair. No error if nothing matches.
func (s *Store) RemoveShortcut(shortcut *ShortcutRecord) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		DELETE FROM shortcuts WHERE package = ? AND intent_uri = ?
	`, shortcut.PackageName, shortcut.IntentURI)
	if err != nil {
		return fmt.Errorf("failed to remove shortcut: %w", err)
	}

	return nil
}

// Shortcuts returns every stored shortcut
func (s *Store) Shortcuts() ([]*ShortcutRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT name, COALESCE(package, ''), COALESCE(icon, ''),
		       COALESCE(intent_uri, ''), icon_blob
		FROM shortcuts
		ORDER BY _id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query shortcuts: %w", err)
	}
	defer rows.Close()

	return scanShortcuts(rows)
}

// ShortcutsForPackage returns the shortcuts owned by a package
func (s *Store) ShortcutsForPackage(packageName string) ([]*ShortcutRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT name, COALESCE(package, ''), COALESCE(icon, ''),
		       COALESCE(intent_uri, ''), icon_blob
		FROM shortcuts
		WHERE package = ?
		ORDER BY _id
	`, packageName)
	if err != nil {
		return nil, fmt.Errorf("failed to query shortcuts: %w", err)
	}
	defer rows.Close()

	return scanShortcuts(rows)
}

func scanShortcuts(rows *sql.Rows) ([]*ShortcutRecord, error) {
	var records []*ShortcutRecord
	for rows.Next() {
		entry := &ShortcutRecord{}
		err := rows.Scan(&entry.Name, &entry.PackageName, &entry.IconResource,
			&entry.IntentURI, &entry.IconBlob)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shortcut: %w", err)
		}
		records = append(records, entry)
	}
	return records, rows.Err()
}

// RemoveShortcutsForPackage deletes every shortcut whose package name
// contains the given substring, cascading the delete to history rows
// recorded under the shortcuts' scheme-prefixed names.
//
// The cascade targets are computed from the full shortcut table as it
// stands before any delete runs; that ordering is load-bearing and must
// not be re-derived per row.
func (s *Store) RemoveShortcutsForPackage(packageName string) error {
	return s.Transaction(func(tx *sql.Tx) error {
		rows, err := tx.Query("SELECT name FROM shortcuts")
		if err != nil {
			return fmt.Errorf("failed to scan shortcuts before cascade: %w", err)
		}

		var names []string
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return fmt.Errorf("failed to scan shortcut name: %w", err)
			}
			names = append(names, name)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()

		for _, name := range names {
			id := record.ForShortcutName(name)
			if _, err := tx.Exec("DELETE FROM history WHERE record = ?", id.String()); err != nil {
				return fmt.Errorf("failed to cascade history delete: %w", err)
			}
		}

		_, err = tx.Exec("DELETE FROM shortcuts WHERE package LIKE ?", "%"+packageName+"%")
		if err != nil {
			return fmt.Errorf("failed to remove shortcuts: %w", err)
		}

		return nil
	})
}

// RemoveAllShortcuts deletes the whole shortcut table
func (s *Store) RemoveAllShortcuts() error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM shortcuts")
	if err != nil {
		return fmt.Errorf("failed to remove all shortcuts: %w", err)
	}

	return nil
}
