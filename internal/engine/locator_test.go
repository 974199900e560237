// File path: internal/engine/locator_test.go
package engine

import (
	"testing"

	"github.com/isodocs/isonav/internal/registry"
)

func TestSectionBoundsStructure(t *testing.T) {
	bounds, ok := SectionBounds("pacs.008", registry.Structure)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds.Start != 441 || bounds.End != 445 {
		t.Fatalf("unexpected bounds: %+v", bounds)
	}
}

func TestSectionBoundsConstraintsIncludesNextStart(t *testing.T) {
	// A constraints section ends at a heading that can sit mid-page, so the
	// next section's start page stays in range.
	bounds, ok := SectionBounds("pacs.008", registry.Constraints)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds.Start != 446 || bounds.End != 451 {
		t.Fatalf("unexpected bounds: %+v", bounds)
	}
}

func TestSectionBoundsFunctionalityIncludesNextStart(t *testing.T) {
	bounds, ok := SectionBounds("pacs.008", registry.Functionality)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds.Start != 440 || bounds.End != 441 {
		t.Fatalf("unexpected bounds: %+v", bounds)
	}
}

func TestSectionBoundsLastSectionUsesChapterBoundary(t *testing.T) {
	bounds, ok := SectionBounds("pacs.008", registry.Blocks)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds.Start != 451 || bounds.End != 519 {
		t.Fatalf("unexpected bounds: %+v", bounds)
	}
}

func TestSectionBoundsSharedStartPage(t *testing.T) {
	// camt.032's structure and constraints begin on the same page; the
	// structure range must still cover that page.
	bounds, ok := SectionBounds("camt.032", registry.Structure)
	if !ok {
		t.Fatalf("expected bounds")
	}
	if bounds.Start != 747 || bounds.End != 747 {
		t.Fatalf("unexpected bounds: %+v", bounds)
	}
}

func TestSectionBoundsUnknown(t *testing.T) {
	if _, ok := SectionBounds("pacs.999", registry.Structure); ok {
		t.Fatalf("unknown code should not resolve")
	}
	if _, ok := SectionBounds("pacs.008", registry.Section("appendix")); ok {
		t.Fatalf("unknown section should not resolve")
	}
}

func TestAllRegisteredBoundsWellFormed(t *testing.T) {
	for _, code := range registry.Codes() {
		for _, section := range registry.SectionOrder {
			bounds, ok := SectionBounds(code, section)
			if !ok {
				t.Fatalf("%s/%s: expected bounds", code, section)
			}
			if bounds.Start < 1 || bounds.End < bounds.Start {
				t.Fatalf("%s/%s: malformed bounds %+v", code, section, bounds)
			}
		}
	}
}
