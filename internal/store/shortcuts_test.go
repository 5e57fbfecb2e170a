package store

import (
	"testing"

	"github.com/franz/launch-history/internal/record"
)

func TestInsertShortcutDedup(t *testing.T) {
	store, _ := openTestStore(t)

	shortcut := &ShortcutRecord{
		Name:        "Compose",
		PackageName: "org.example.mail",
		IntentURI:   "intent://compose",
		IconBlob:    []byte{0x89, 0x50},
	}

	inserted, err := store.InsertShortcut(shortcut)
	if err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}
	if !inserted {
		t.Fatal("expected first insert to succeed")
	}

	inserted, err = store.InsertShortcut(shortcut)
	if err != nil {
		t.Fatalf("failed on duplicate insert: %v", err)
	}
	if inserted {
		t.Error("expected duplicate (package, intent) insert to be rejected")
	}

	// Same package, different intent is a distinct shortcut
	other := &ShortcutRecord{
		Name:        "Inbox",
		PackageName: "org.example.mail",
		IntentURI:   "intent://inbox",
	}
	inserted, err = store.InsertShortcut(other)
	if err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}
	if !inserted {
		t.Error("expected distinct intent URI to insert")
	}
}

func TestInsertShortcutDedupWithoutPackage(t *testing.T) {
	store, _ := openTestStore(t)

	// Some shortcut sources omit the owning package; uniqueness then
	// rests on the intent URI alone
	shortcut := &ShortcutRecord{
		Name:      "Web App",
		IntentURI: "intent://webapp",
	}

	inserted, err := store.InsertShortcut(shortcut)
	if err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}
	if !inserted {
		t.Fatal("expected first insert to succeed")
	}

	inserted, err = store.InsertShortcut(&ShortcutRecord{
		Name:      "Web App Again",
		IntentURI: "intent://webapp",
	})
	if err != nil {
		t.Fatalf("failed on duplicate insert: %v", err)
	}
	if inserted {
		t.Error("expected duplicate intent URI without package to be rejected")
	}
}

func TestShortcutListAndRemove(t *testing.T) {
	store, _ := openTestStore(t)

	shortcuts := []*ShortcutRecord{
		{Name: "Compose", PackageName: "org.example.mail", IntentURI: "intent://compose"},
		{Name: "Inbox", PackageName: "org.example.mail", IntentURI: "intent://inbox"},
		{Name: "Navigate", PackageName: "org.example.maps", IntentURI: "intent://navigate"},
	}
	for _, sc := range shortcuts {
		if _, err := store.InsertShortcut(sc); err != nil {
			t.Fatalf("failed to insert shortcut: %v", err)
		}
	}

	all, err := store.Shortcuts()
	if err != nil {
		t.Fatalf("failed to list shortcuts: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 shortcuts, got %d", len(all))
	}

	mail, err := store.ShortcutsForPackage("org.example.mail")
	if err != nil {
		t.Fatalf("failed to list package shortcuts: %v", err)
	}
	if len(mail) != 2 {
		t.Errorf("expected 2 mail shortcuts, got %d", len(mail))
	}

	err = store.RemoveShortcut(&ShortcutRecord{
		PackageName: "org.example.mail",
		IntentURI:   "intent://compose",
	})
	if err != nil {
		t.Fatalf("failed to remove shortcut: %v", err)
	}

	mail, err = store.ShortcutsForPackage("org.example.mail")
	if err != nil {
		t.Fatalf("failed to list package shortcuts: %v", err)
	}
	if len(mail) != 1 || mail[0].Name != "Inbox" {
		t.Errorf("expected only Inbox to remain, got %d shortcuts", len(mail))
	}

	if err := store.RemoveAllShortcuts(); err != nil {
		t.Fatalf("failed to remove all shortcuts: %v", err)
	}
	all, err = store.Shortcuts()
	if err != nil {
		t.Fatalf("failed to list shortcuts: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty shortcut table, got %d", len(all))
	}
}

func TestRemoveShortcutsCascadesHistory(t *testing.T) {
	store, _ := openTestStore(t)

	if _, err := store.InsertShortcut(&ShortcutRecord{
		Name:        "Compose",
		PackageName: "org.example.mail",
		IntentURI:   "intent://compose",
	}); err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}

	// History recorded under the shortcut's lowercased name, plus an
	// unrelated app launch
	composeID := record.ForShortcutName("Compose")
	if err := store.InsertHistory("c", composeID); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}
	if err := store.InsertHistory("p", record.App("org.example.phone")); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	if err := store.RemoveShortcutsForPackage("example.mail"); err != nil {
		t.Fatalf("failed to remove shortcuts: %v", err)
	}

	shortcuts, err := store.Shortcuts()
	if err != nil {
		t.Fatalf("failed to list shortcuts: %v", err)
	}
	if len(shortcuts) != 0 {
		t.Errorf("expected substring match to remove the shortcut, got %d left", len(shortcuts))
	}

	// The cascade removed the shortcut's history but not the app's
	records, err := store.PreviousResultsForQuery("")
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}
	for _, entry := range records {
		if entry.Record == composeID {
			t.Error("expected cascade to delete the shortcut's history rows")
		}
	}

	length, err := store.HistoryLength()
	if err != nil {
		t.Fatalf("failed to get history length: %v", err)
	}
	if length != 1 {
		t.Errorf("expected unrelated history to survive, got length %d", length)
	}
}

func TestRemoveShortcutsCascadeUsesPreDeleteScan(t *testing.T) {
	store, _ := openTestStore(t)

	// Two shortcuts from different packages; the prune filter only
	// matches one, but the cascade is computed from the full pre-delete
	// shortcut set
	if _, err := store.InsertShortcut(&ShortcutRecord{
		Name: "Compose", PackageName: "org.example.mail", IntentURI: "intent://compose",
	}); err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}
	if _, err := store.InsertShortcut(&ShortcutRecord{
		Name: "Navigate", PackageName: "org.example.maps", IntentURI: "intent://navigate",
	}); err != nil {
		t.Fatalf("failed to insert shortcut: %v", err)
	}

	if err := store.InsertHistory("", record.ForShortcutName("Navigate")); err != nil {
		t.Fatalf("failed to insert history: %v", err)
	}

	if err := store.RemoveShortcutsForPackage("org.example.mail"); err != nil {
		t.Fatalf("failed to remove shortcuts: %v", err)
	}

	// The maps shortcut survives the package filter...
	shortcuts, err := store.Shortcuts()
	if err != nil {
		t.Fatalf("failed to list shortcuts: %v", err)
	}
	if len(shortcuts) != 1 || shortcuts[0].Name != "Navigate" {
		t.Fatalf("expected only the maps shortcut to remain")
	}

	// ...but its history was swept by the unfiltered cascade scan
	length, err := store.HistoryLength()
	if err != nil {
		t.Fatalf("failed to get history length: %v", err)
	}
	if length != 0 {
		t.Errorf("expected cascade over the full pre-delete scan, history length %d", length)
	}
}
