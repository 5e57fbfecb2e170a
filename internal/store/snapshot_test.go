package store

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/util"
)

func TestSnapshotRoundTrip(t *testing.T) {
	source, _ := openTestStore(t)

	mail := record.App("org.example.mail")
	if err := source.InsertHistory("m", mail); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}
	if err := source.InsertHistory("m", mail); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}
	if _, err := source.InsertShortcut(&ShortcutRecord{
		Name: "Compose", PackageName: "org.example.mail", IntentURI: "intent://compose",
	}); err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}
	if err := source.InsertTagForID("work", mail); err != nil {
		t.Fatalf("failed to insert tag: %v", err)
	}
	if err := source.SetBadgeCount("org.example.mail", 3); err != nil {
		t.Fatalf("failed to set badge: %v", err)
	}

	blob, err := source.Export()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("expected non-empty snapshot")
	}

	// Import over a fresh store that already holds unrelated data
	dest, _ := openTestStore(t)
	if err := dest.InsertHistory("junk", record.App("org.example.junk")); err != nil {
		t.Fatalf("failed to insert junk: %v", err)
	}

	if err := dest.Import(blob); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	length, err := dest.HistoryLength()
	if err != nil {
		t.Fatalf("failed to read restored history: %v", err)
	}
	if length != 2 {
		t.Errorf("expected restored history length 2, got %d", length)
	}

	shortcuts, err := dest.Shortcuts()
	if err != nil {
		t.Fatalf("failed to read restored shortcuts: %v", err)
	}
	if len(shortcuts) != 1 || shortcuts[0].Name != "Compose" {
		t.Errorf("expected restored Compose shortcut, got %d shortcuts", len(shortcuts))
	}

	srcTags, err := source.LoadTags()
	if err != nil {
		t.Fatalf("failed to load source tags: %v", err)
	}
	dstTags, err := dest.LoadTags()
	if err != nil {
		t.Fatalf("failed to load restored tags: %v", err)
	}
	if !reflect.DeepEqual(srcTags, dstTags) {
		t.Errorf("expected identical tags, got %v vs %v", srcTags, dstTags)
	}

	srcBadges, err := source.LoadBadges()
	if err != nil {
		t.Fatalf("failed to load source badges: %v", err)
	}
	dstBadges, err := dest.LoadBadges()
	if err != nil {
		t.Fatalf("failed to load restored badges: %v", err)
	}
	if !reflect.DeepEqual(srcBadges, dstBadges) {
		t.Errorf("expected identical badges, got %v vs %v", srcBadges, dstBadges)
	}
}

func TestImportGarbageReportsMalformedSnapshot(t *testing.T) {
	store, _ := openTestStore(t)

	err := store.Import([]byte("this is not a database"))
	if err == nil {
		t.Fatal("expected import of garbage to fail")
	}
	if !errors.Is(err, util.ErrMalformedSnapshot) {
		t.Errorf("expected ErrMalformedSnapshot, got %v", err)
	}
}

func TestExportIncludesWALContent(t *testing.T) {
	clock := newTestClock()
	path := filepath.Join(t.TempDir(), "wal.db")

	store, err := OpenWithOptions(path, &OpenOptions{Clock: clock.Now})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	// Writes land in the WAL first; export must checkpoint so the blob
	// alone reproduces them
	if err := store.InsertHistory("q", record.App("org.example.mail")); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	blob, err := store.Export()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	other, _ := openTestStore(t)
	if err := other.Import(blob); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	length, err := other.HistoryLength()
	if err != nil {
		t.Fatalf("failed to read restored history: %v", err)
	}
	if length != 1 {
		t.Errorf("expected checkpointed write in snapshot, got length %d", length)
	}
}
