// File path: internal/engine/section.go
package engine

import (
	"regexp"
	"strings"

	"github.com/isodocs/isonav/internal/registry"
)

// constraintsHeadingRe locates the actual "Constraints" heading so leading
// spillover from the previous section can be trimmed.
var constraintsHeadingRe = regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+Constraints\s*$`)

// constraintsStopRes are the heading spellings that end a constraints
// section. The PDFs are inconsistent about spacing and numbering, so all
// variants are checked and the earliest match wins.
var constraintsStopRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\n\s*Message Building Blocks\s*\n`),
	regexp.MustCompile(`(?i)\n\s*MessageBuildingBlocks\s*\n`),
	regexp.MustCompile(`(?i)\n\s*Message\s+Building\s+Blocks\s*\n`),
	regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+Message\s+Building\s+Blocks`),
	regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+MessageBuildingBlocks`),
}

// functionalityStopRes end a functionality section at its "Structure"
// heading.
var functionalityStopRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\n\s*\d+(?:\.\d+)*\s+Structure\s*\n`),
	regexp.MustCompile(`(?i)\n\s*Structure\s*\n`),
	regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+Structure\s*$`),
}

// FullSection returns the cleaned text of an entire section. Constraints and
// functionality ranges deliberately overrun into the next section's start
// page, so their text is trimmed at the next section's heading; constraints
// additionally drop anything before the "Constraints" heading itself. Other
// sections are the plain concatenation of their normalized pages. Any lookup
// miss yields an empty string.
func (e *Engine) FullSection(code string, section registry.Section) string {
	pages, bounds, ok := e.sectionPages(code, section)
	if !ok {
		return ""
	}

	var parts []string
	lastPage := bounds.End
	if lastPage > len(pages) {
		lastPage = len(pages)
	}
	for pageNum := bounds.Start; pageNum <= lastPage; pageNum++ {
		if clean := Normalize(pages[pageNum-1]); clean != "" {
			parts = append(parts, clean)
		}
	}
	text := strings.Join(parts, "\n\n")

	switch section {
	case registry.Constraints:
		if m := constraintsHeadingRe.FindStringIndex(text); m != nil {
			text = text[m[1]:]
		}
		text = truncateAtEarliest(text, constraintsStopRes)
	case registry.Functionality:
		text = truncateAtEarliest(text, functionalityStopRes)
	}
	return strings.TrimSpace(text)
}

func truncateAtEarliest(text string, stops []*regexp.Regexp) string {
	earliest := len(text)
	for _, re := range stops {
		if m := re.FindStringIndex(text); m != nil && m[0] < earliest {
			earliest = m[0]
		}
	}
	return text[:earliest]
}
