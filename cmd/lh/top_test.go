package main

import (
	"testing"

	"github.com/franz/launch-history/internal/record"
)

func TestTargetNameResolver(t *testing.T) {
	resolver := targetNameResolver{}

	name, ok := resolver.ResolveDisplayName(record.App("org.example.mail"))
	if !ok || name != "org.example.mail" {
		t.Errorf("expected target segment as display name, got %q (%v)", name, ok)
	}

	name, ok = resolver.ResolveDisplayName(record.ID{})
	if ok || name != "" {
		t.Error("expected empty identifiers to stay unresolved")
	}
}
