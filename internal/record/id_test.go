package record

import "testing"

func TestParseRoundTrip(t *testing.T) {
	cases := []struct {
		raw  string
		kind Kind
		name string
	}{
		{"app://org.example.mail/ComposeActivity", KindApp, "org.example.mail/ComposeActivity"},
		{"contact://42", KindContact, "42"},
		{"shortcut://compose", KindShortcut, "compose"},
		{"tag://work", KindTagFilter, "work"},
		{"something-legacy", KindOpaque, "something-legacy"},
		{"", KindOpaque, ""},
	}

	for _, tc := range cases {
		id := Parse(tc.raw)
		if id.Kind != tc.kind {
			t.Errorf("Parse(%q): expected kind %v, got %v", tc.raw, tc.kind, id.Kind)
		}
		if id.Name != tc.name {
			t.Errorf("Parse(%q): expected name %q, got %q", tc.raw, tc.name, id.Name)
		}
		if id.String() != tc.raw {
			t.Errorf("Parse(%q).String(): expected round trip, got %q", tc.raw, id.String())
		}
	}
}

func TestForShortcutNameLowercases(t *testing.T) {
	id := ForShortcutName("Compose Mail")
	if id.Kind != KindShortcut {
		t.Errorf("expected shortcut kind, got %v", id.Kind)
	}
	if id.String() != "shortcut://compose mail" {
		t.Errorf("expected lowercased scheme-prefixed id, got %q", id.String())
	}
}

func TestConstructors(t *testing.T) {
	if App("a").String() != "app://a" {
		t.Errorf("unexpected app id: %q", App("a").String())
	}
	if Contact("c").String() != "contact://c" {
		t.Errorf("unexpected contact id: %q", Contact("c").String())
	}
	if TagFilter("t").String() != "tag://t" {
		t.Errorf("unexpected tag-filter id: %q", TagFilter("t").String())
	}
	if !(ID{}).IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if App("").IsZero() {
		t.Error("empty app id is still typed, should not be zero")
	}
}
