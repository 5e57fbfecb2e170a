// Package rank orders previously-launched records for a partial query.
// It is pure computation over the history table: it never mutates state
// and only reads through the store's connection.
package rank

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/store"
	"golang.org/x/text/unicode/norm"
)

const (
	// The frecency query groups by record, so it runs over a bounded
	// working set of recent launches instead of the whole table. The
	// multiplier and the epsilon below are long-standing tuning
	// constants; changing them changes ranking results.
	frecencyWindowMultiplier = 30

	// Guards the recency divisor against zero for the newest row
	frecencyEpsilon = 0.001

	// Adaptive mode only counts launches within this many hours
	adaptiveWindowHours = 36
)

// NameResolver maps a record to its human display name. Only the
// alphabetical re-sort depends on it.
type NameResolver interface {
	ResolveDisplayName(rec record.ID) (string, bool)
}

// Engine ranks history entries under a selectable strategy
type Engine struct {
	store *store.Store
	now   func() time.Time
}

// Config holds engine configuration
type Config struct {
	Store *store.Store
	Clock func() time.Time // Defaults to time.Now
}

// New creates a new Engine
func New(cfg *Config) *Engine {
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store: cfg.Store,
		now:   now,
	}
}

// Top returns up to limit records ordered best-first under the given
// mode. Value semantics depend on the mode; see store.ValuedRecord.
func (e *Engine) Top(limit int, mode Mode) ([]store.ValuedRecord, error) {
	db, err := e.store.DB()
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	switch mode {
	case Frecency:
		rows, err = db.Query(frecencySQL,
			limit*frecencyWindowMultiplier, limit*frecencyWindowMultiplier, limit)
	case Frequency:
		rows, err = db.Query(frequencySQL, limit)
	case Adaptive:
		cutoff := e.now().UnixMilli() - adaptiveWindowHours*int64(time.Hour/time.Millisecond)
		rows, err = db.Query(adaptiveSQL, cutoff, limit)
	default:
		// Unrecognized modes deliberately fall back to recency
		rows, err = db.Query(recencySQL, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query history by %s: %w", mode, err)
	}
	defer rows.Close()

	var records []store.ValuedRecord
	for rows.Next() {
		var raw string
		var entry store.ValuedRecord
		if err := rows.Scan(&raw, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Record = record.Parse(raw)
		records = append(records, entry)
	}

	return records, rows.Err()
}

// History returns the ranked records, optionally re-sorted by resolved
// display name. The re-sort happens after ranking and limiting, so it
// changes presentation order only, never which records are returned.
// Records whose names cannot be resolved sort as empty strings.
func (e *Engine) History(limit int, mode Mode, sortByName bool, resolver NameResolver) ([]store.ValuedRecord, error) {
	records, err := e.Top(limit, mode)
	if err != nil {
		return nil, err
	}

	if sortByName && resolver != nil {
		for i := range records {
			if name, ok := resolver.ResolveDisplayName(records[i].Record); ok {
				records[i].Name = norm.NFC.String(name)
			}
		}

		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Name < records[j].Name
		})
	}

	return records, nil
}

const recencySQL = `
	SELECT record, 1
	FROM history
	ORDER BY _id DESC
	LIMIT ?
`

const frequencySQL = `
	SELECT record, COUNT(*)
	FROM history
	GROUP BY record
	ORDER BY COUNT(*) DESC, MIN(_id) ASC
	LIMIT ?
`

// timeStamp >= 0 keeps rows with forged negative timestamps out of the
// window no matter how far back the cutoff reaches
const adaptiveSQL = `
	SELECT record, COUNT(*)
	FROM history
	WHERE timeStamp >= 0 AND timeStamp > ?
	GROUP BY record
	ORDER BY COUNT(*) DESC, MIN(_id) ASC
	LIMIT ?
`

// frecency = frequency within the working set, damped by how far from
// the newest row the record was last launched:
//
//	score = (count / rows_in_working_set) / (newest _id - group's newest _id + epsilon)
var frecencySQL = fmt.Sprintf(`
	SELECT record, COUNT(*)
	FROM (
		SELECT _id, record FROM history ORDER BY _id DESC LIMIT ?
	) recent
	GROUP BY record
	ORDER BY
		COUNT(*) * 1.0
			/ (SELECT COUNT(*) FROM (SELECT _id FROM history ORDER BY _id DESC LIMIT ?))
			/ ((SELECT MAX(_id) FROM history) - MAX(_id) + %g)
		DESC,
		MIN(_id) ASC
	LIMIT ?
`, frecencyEpsilon)
