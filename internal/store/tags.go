package store

import (
	"fmt"

	"github.com/franz/launch-history/internal/record"
)

// InsertTagForID associates a freeform tag with a record. Duplicate
// (record, tag) rows are not checked at write time.
func (s *Store) InsertTagForID(tag string, rec record.ID) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT INTO tags (record, tag) VALUES (?, ?)", rec.String(), tag)
	if err != nil {
		return fmt.Errorf("failed to insert tag: %w", err)
	}

	return nil
}

// DeleteTagsForID removes every tag row for a record
func (s *Store) DeleteTagsForID(rec record.ID) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM tags WHERE record = ?", rec.String())
	if err != nil {
		return fmt.Errorf("failed to delete tags: %w", err)
	}

	return nil
}

// LoadTags returns the full tag edge list as a record→tag mapping.
// When duplicate rows exist for a record, the last one scanned wins
// (possibly a latent quirk, preserved as-is).
func (s *Store) LoadTags() (map[record.ID]string, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT record, tag FROM tags ORDER BY _id")
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	records := make(map[record.ID]string)
	for rows.Next() {
		var raw, tag string
		if err := rows.Scan(&raw, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		records[record.Parse(raw)] = tag
	}

	return records, rows.Err()
}
