// File path: internal/engine/finder.go
package engine

import (
	"regexp"
	"strings"

	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/registry"
)

// passageCap bounds an extracted passage when no terminating heading is
// found inside the page window.
const passageCap = 8000

// groupHeaderStopTags mark the start of a nested building block. A
// GroupHeader passage must stop at the first of these so the parent block's
// text does not absorb its children.
var groupHeaderStopTags = []string{
	"<PmtInf>",
	"<CdtTrfTxInf>",
	"<DrctDbtTxInf>",
	"<Undrlyg>",
	"<Case>",
}

var (
	nextConstraintRe = regexp.MustCompile(`\nC\d+\s+[A-Z]`)
	blocksHeadingRe  = regexp.MustCompile(`(?i)\n\s*\d+(?:\.\d+)*\s+Message\s+Building\s+Blocks`)
	nextNumberedRe   = regexp.MustCompile(`\n\s*\d+(?:\.\d+)+\s+[A-Z][A-Za-z0-9\s]+?\s*<[^>]+>`)
	nextAnyHeadingRe = regexp.MustCompile(`\n\s*\d*(?:\.\d+)*\s*[A-Z][A-Za-z0-9\s]+?\s*<[^>]+>`)
)

// Passage is a verbatim extract from a section: the text, the page it starts
// on, and the candidate term that matched.
type Passage struct {
	Page int
	Text string
	Term string
}

// FindTerm scans the section's page range for the first candidate term that
// matches one of three heading shapes, in priority order: a constraint
// heading (code followed by a capitalized name), a numbered building-block
// heading ending in the term's XML tag, or the same heading without
// numbering. The search is term-major, then page-minor, then pattern
// priority; the first hit wins. A miss across all terms and pages is
// absence, not an error: callers fall back to full-section content.
func (e *Engine) FindTerm(code string, section registry.Section, terms []string) (Passage, bool) {
	if len(terms) == 0 {
		return Passage{}, false
	}
	pages, bounds, ok := e.sectionPages(code, section)
	if !ok {
		return Passage{}, false
	}
	logger := common.Logger()

	for _, term := range terms {
		constraintRe := regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\s+[A-Z][a-zA-Z]+`)
		numberedRe := regexp.MustCompile(`(?mi)^\s*\d+(?:\.\d+)+\s+[A-Za-z\s]+<\s*` + regexp.QuoteMeta(term) + `\s*>\s*$`)
		plainRe := regexp.MustCompile(`(?mi)^\s*[A-Z][A-Za-z\s]+<\s*` + regexp.QuoteMeta(term) + `\s*>\s*$`)

		lastPage := bounds.End
		if lastPage > len(pages) {
			lastPage = len(pages)
		}
		for pageNum := bounds.Start; pageNum <= lastPage; pageNum++ {
			clean := Normalize(pages[pageNum-1])
			if clean == "" {
				continue
			}

			if text, found := matchConstraintHeading(constraintRe, clean); found {
				logger.Debug("engine: constraint heading matched", "term", term, "page", pageNum)
				return Passage{Page: pageNum, Text: text, Term: term}, true
			}

			if loc := numberedRe.FindStringIndex(clean); loc != nil {
				text := e.blockPassage(pages, bounds, pageNum, loc[0], term, nextNumberedRe)
				logger.Debug("engine: numbered block heading matched", "term", term, "page", pageNum)
				return Passage{Page: pageNum, Text: text, Term: term}, true
			}

			if loc := plainRe.FindStringIndex(clean); loc != nil {
				text := e.blockPassage(pages, bounds, pageNum, loc[0], term, nextAnyHeadingRe)
				logger.Debug("engine: unnumbered block heading matched", "term", term, "page", pageNum)
				return Passage{Page: pageNum, Text: text, Term: term}, true
			}
		}
	}
	logger.Debug("engine: no term matched", "code", code, "section", string(section), "terms", len(terms))
	return Passage{}, false
}

// matchConstraintHeading extracts a constraint passage: from the heading to
// the next constraint heading or the "Message Building Blocks" heading,
// whichever comes first, else end of page.
func matchConstraintHeading(headingRe *regexp.Regexp, clean string) (string, bool) {
	loc := headingRe.FindStringIndex(clean)
	if loc == nil {
		return "", false
	}
	start := loc[0]
	// Offset past the heading so the heading itself cannot terminate the
	// passage it starts.
	searchFrom := start + 10
	if searchFrom > len(clean) {
		searchFrom = len(clean)
	}
	rest := clean[searchFrom:]

	end := len(clean)
	if m := nextConstraintRe.FindStringIndex(rest); m != nil && searchFrom+m[0] < end {
		end = searchFrom + m[0]
	}
	if m := blocksHeadingRe.FindStringIndex(rest); m != nil && searchFrom+m[0] < end {
		end = searchFrom + m[0]
	}
	return clean[start:end], true
}

// blockPassage builds the passage for a building-block heading found at
// startIdx in the cleaned text of pageNum. Definition and usage paragraphs
// regularly run across a page break, so the passage is carved from a window
// of the matched page plus up to two following pages, clipped to the section
// end. It runs to the next block heading in the window, or the fixed cap.
func (e *Engine) blockPassage(pages []string, bounds PageBounds, pageNum, startIdx int, term string, nextHeading *regexp.Regexp) string {
	window := pageWindow(pages, bounds, pageNum, 3)

	end := len(window)
	if m := nextHeading.FindStringIndex(window[startIdx+1:]); m != nil {
		end = startIdx + 1 + m[0]
	} else if startIdx+passageCap < end {
		end = startIdx + passageCap
	}

	lower := strings.ToLower(term)
	if lower == "grphdr" || lower == "groupheader" {
		tail := strings.ToLower(window[startIdx:end])
		for _, tag := range groupHeaderStopTags {
			if pos := strings.Index(tail, strings.ToLower(tag)); pos >= 0 && startIdx+pos < end {
				end = startIdx + pos
				tail = tail[:pos]
			}
		}
	}
	return window[startIdx:end]
}

// pageWindow concatenates the normalized text of pageNum and up to maxPages-1
// following pages, clipped to the section bounds. The window always begins
// with pageNum's own cleaned text, so indexes into that page remain valid in
// the window.
func pageWindow(pages []string, bounds PageBounds, pageNum, maxPages int) string {
	last := pageNum + maxPages - 1
	if last > bounds.End {
		last = bounds.End
	}
	if last > len(pages) {
		last = len(pages)
	}
	var chunks []string
	for p := pageNum; p <= last; p++ {
		if clean := Normalize(pages[p-1]); clean != "" {
			chunks = append(chunks, clean)
		}
	}
	return strings.Join(chunks, "\n\n")
}
