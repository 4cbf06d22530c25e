package ident

import (
	"strings"
	"testing"
)

func TestNewShape(t *testing.T) {
	id := New()
	if len(id) != 32 {
		t.Fatalf("expected 32 chars, got %d (%s)", len(id), id)
	}
	if strings.Contains(id, "-") {
		t.Fatalf("expected no hyphens, got %s", id)
	}
}

func TestNewUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}
