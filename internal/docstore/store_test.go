// File path: internal/docstore/store_test.go
package docstore

import (
	"strings"
	"testing"
)

func TestSeedAndPages(t *testing.T) {
	store := New()
	seeded := []string{"page one", "page two"}
	store.Seed("data/pacs_messages.pdf", seeded)

	pages, err := store.Pages("data/pacs_messages.pdf")
	if err != nil {
		t.Fatalf("pages failed: %v", err)
	}
	if len(pages) != 2 || pages[0] != "page one" {
		t.Fatalf("unexpected pages: %v", pages)
	}

	// The store keeps its own copy of seeded pages.
	seeded[0] = "mutated"
	pages, _ = store.Pages("data/pacs_messages.pdf")
	if pages[0] != "page one" {
		t.Fatalf("cache aliases caller slice: %v", pages)
	}
}

func TestInvalidateDropsEntry(t *testing.T) {
	store := New()
	store.Seed("data/camt_messages.pdf", []string{"x"})
	store.Invalidate("data/camt_messages.pdf")
	if _, err := store.Pages("data/camt_messages.pdf"); err == nil {
		t.Fatalf("expected error after invalidating a path with no file behind it")
	}
}

func TestPagesMissingFile(t *testing.T) {
	store := New()
	_, err := store.Pages("data/does_not_exist.pdf")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "stat pdf") {
		t.Fatalf("unexpected error: %v", err)
	}
}
