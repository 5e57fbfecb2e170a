package store

// Schema v1 - the four launcher tables.
//
// No foreign keys on purpose: the shortcut→history cascade is enforced
// by application logic so it can target the scheme-prefixed history
// identifiers, which the storage engine knows nothing about.
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY,
  applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- One row per launch event; never deduplicated at write time
CREATE TABLE IF NOT EXISTS history (
  _id INTEGER PRIMARY KEY AUTOINCREMENT,
  record TEXT NOT NULL,
  query TEXT NOT NULL DEFAULT '',
  timeStamp INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_history_record ON history(record);
CREATE INDEX IF NOT EXISTS idx_history_query ON history(query);

-- Pinned OS shortcuts
CREATE TABLE IF NOT EXISTS shortcuts (
  _id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  package TEXT,
  icon TEXT,
  intent_uri TEXT,
  icon_blob BLOB
);

-- Freeform tag per record; duplicates tolerated, reads are
-- last-write-wins
CREATE TABLE IF NOT EXISTS tags (
  _id INTEGER PRIMARY KEY AUTOINCREMENT,
  record TEXT NOT NULL,
  tag TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tags_record ON tags(record);

-- At most one row per package; a count of zero means no row
CREATE TABLE IF NOT EXISTS badges (
  package TEXT NOT NULL,
  badge_count INTEGER NOT NULL DEFAULT 0
);
`

// Schema v2 - indexes for the ranking queries (adaptive window scan,
// package-scoped shortcut lookups)
const schemaV2 = `
CREATE INDEX IF NOT EXISTS idx_history_timestamp ON history(timeStamp);
CREATE INDEX IF NOT EXISTS idx_shortcuts_package ON shortcuts(package);
CREATE INDEX IF NOT EXISTS idx_badges_package ON badges(package);
`
