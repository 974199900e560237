// File path: internal/engine/locator.go
package engine

import "github.com/isodocs/isonav/internal/registry"

// PageBounds is an inclusive 1-indexed page range for one section of a
// message's chapter. Bounds are derived per query, never stored.
type PageBounds struct {
	Start int
	End   int
}

// SectionBounds computes the page range holding a (code, section) pair. The
// nominal end is the next section's start page (or the next message's start
// when the section is last in its chapter). Constraints and functionality
// keep that page in range because their true end is a heading that can sit
// mid-page; every other section ends one page earlier. The boolean is false
// when the code or section is unknown.
func SectionBounds(code string, section registry.Section) (PageBounds, bool) {
	start, ok := registry.StartPage(code, section)
	if !ok {
		return PageBounds{}, false
	}

	nextStart, ok := nextBoundary(code, section)
	if !ok {
		return PageBounds{}, false
	}

	bounds := PageBounds{Start: start, End: nextStart - 1}
	if section == registry.Constraints || section == registry.Functionality {
		if _, hasNext := section.Next(); hasNext {
			bounds.End = nextStart
		}
	}
	// Two sections can share a start page in short chapters; a section still
	// occupies at least the page it starts on.
	if bounds.End < bounds.Start {
		bounds.End = bounds.Start
	}
	return bounds, true
}

func nextBoundary(code string, section registry.Section) (int, bool) {
	if next, ok := section.Next(); ok {
		if page, ok := registry.StartPage(code, next); ok {
			return page, true
		}
	}
	return registry.NextMessageStart(code)
}
