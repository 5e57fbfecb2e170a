// Package record defines the typed identifiers used to name launchable
// items throughout the store. An identifier is a kind plus a target name
// and serializes to a scheme-prefixed string ("app://...", "shortcut://...")
// which is what actually lands in the database.
package record

import "strings"

// Kind distinguishes the categories of launchable items
type Kind int

const (
	// KindOpaque is the fallback for identifiers with no recognized
	// scheme; the raw string round-trips unchanged
	KindOpaque Kind = iota
	KindApp
	KindContact
	KindShortcut
	KindTagFilter
)

const (
	schemeApp       = "app://"
	schemeContact   = "contact://"
	schemeShortcut  = "shortcut://"
	schemeTagFilter = "tag://"
)

// String returns the kind name for logging
func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindContact:
		return "contact"
	case KindShortcut:
		return "shortcut"
	case KindTagFilter:
		return "tag-filter"
	default:
		return "opaque"
	}
}

// ID identifies a launchable or taggable item
type ID struct {
	Kind Kind
	Name string
}

// Parse decodes a scheme-prefixed identifier. Strings without a known
// scheme are preserved verbatim as KindOpaque so that foreign entries
// already present in a database survive a read/write round trip.
func Parse(s string) ID {
	switch {
	case strings.HasPrefix(s, schemeApp):
		return ID{KindApp, s[len(schemeApp):]}
	case strings.HasPrefix(s, schemeContact):
		return ID{KindContact, s[len(schemeContact):]}
	case strings.HasPrefix(s, schemeShortcut):
		return ID{KindShortcut, s[len(schemeShortcut):]}
	case strings.HasPrefix(s, schemeTagFilter):
		return ID{KindTagFilter, s[len(schemeTagFilter):]}
	default:
		return ID{KindOpaque, s}
	}
}

// String encodes the identifier in its stored form
func (id ID) String() string {
	switch id.Kind {
	case KindApp:
		return schemeApp + id.Name
	case KindContact:
		return schemeContact + id.Name
	case KindShortcut:
		return schemeShortcut + id.Name
	case KindTagFilter:
		return schemeTagFilter + id.Name
	default:
		return id.Name
	}
}

// IsZero reports whether the identifier is empty
func (id ID) IsZero() bool {
	return id.Kind == KindOpaque && id.Name == ""
}

// App returns an application identifier
func App(name string) ID {
	return ID{KindApp, name}
}

// Contact returns a contact identifier
func Contact(name string) ID {
	return ID{KindContact, name}
}

// ForShortcutName returns the history identifier a pinned shortcut is
// recorded under. The name is lowercased; the cascade delete that runs
// when shortcuts are removed relies on this exact form.
func ForShortcutName(name string) ID {
	return ID{KindShortcut, strings.ToLower(name)}
}

// TagFilter returns a tag-filter identifier
func TagFilter(name string) ID {
	return ID{KindTagFilter, name}
}
