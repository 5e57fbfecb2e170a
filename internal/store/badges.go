package store

import (
	"database/sql"
	"fmt"
)

// LoadBadges returns the badge count for every package that has one
func (s *Store) LoadBadges() (map[string]int, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT package, badge_count FROM badges")
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	defer rows.Close()

	records := make(map[string]int)
	for rows.Next() {
		var packageName string
		var count int
		if err := rows.Scan(&packageName, &count); err != nil {
			return nil, fmt.Errorf("failed to scan badge: %w", err)
		}
		records[packageName] = count
	}

	return records, rows.Err()
}

// SetBadgeCount upserts a package's badge count. Any existing row is
// removed first; a new row is written only when the count is strictly
// positive, so count <= 0 means no row at all.
func (s *Store) SetBadgeCount(packageName string, count int) error {
	return s.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM badges WHERE package = ?", packageName); err != nil {
			return fmt.Errorf("failed to clear badge: %w", err)
		}

		if count > 0 {
			_, err := tx.Exec(`
				INSERT INTO badges (package, badge_count) VALUES (?, ?)
			`, packageName, count)
			if err != nil {
				return fmt.Errorf("failed to set badge: %w", err)
			}
		}

		return nil
	})
}
