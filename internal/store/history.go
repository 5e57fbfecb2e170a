package store

import (
	"fmt"

	"github.com/franz/launch-history/internal/record"
)

// ValuedRecord is a derived aggregate over history entries. Value is
// strategy-defined (a raw launch count, or a relative score) and must
// not be compared across ranking modes. Name is filled in only when the
// caller asked for an alphabetical re-sort. Never persisted.
type ValuedRecord struct {
	Record record.ID
	Value  int
	Name   string
}

// InsertHistory appends a launch event for the given record, stamped
// with the store's clock. Entries are never deduplicated.
func (s *Store) InsertHistory(query string, rec record.ID) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO history (record, query, timeStamp)
		VALUES (?, ?, ?)
	`, rec.String(), query, s.Now())

	if err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}

	return nil
}

// RemoveFromHistory deletes all launch events for a record. Removing a
// record with no history is not an error.
func (s *Store) RemoveFromHistory(rec record.ID) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM history WHERE record = ?", rec.String())
	if err != nil {
		return fmt.Errorf("failed to remove from history: %w", err)
	}

	return nil
}

// ClearHistory deletes every launch event
func (s *Store) ClearHistory() error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	_, err = db.Exec("DELETE FROM history")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	return nil
}

// HistoryLength returns the total number of launch events
func (s *Store) HistoryLength() (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM history").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}

	return count, nil
}

// PreviousResultsForQuery returns up to 10 distinct records previously
// selected for queries starting with the given prefix, most-selected
// first. The match is case-sensitive. Biases ranking toward what the
// user picked for this exact partial input before.
func (s *Store) PreviousResultsForQuery(query string) ([]ValuedRecord, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT record, COUNT(*)
		FROM history
		WHERE query LIKE ?
		GROUP BY record
		ORDER BY COUNT(*) DESC, MIN(_id) ASC
		LIMIT 10
	`, query+"%")

	if err != nil {
		return nil, fmt.Errorf("failed to query previous results: %w", err)
	}
	defer rows.Close()

	var records []ValuedRecord
	for rows.Next() {
		var raw string
		var entry ValuedRecord
		if err := rows.Scan(&raw, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan previous result: %w", err)
		}
		entry.Record = record.Parse(raw)
		records = append(records, entry)
	}

	return records, rows.Err()
}
