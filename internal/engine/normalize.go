// File path: internal/engine/normalize.go
package engine

import (
	"regexp"
	"strings"
)

// cleanRule is one step of the page-text cleanup pipeline. Rules are named so
// each can be exercised on its own in tests.
type cleanRule struct {
	name  string
	apply func(string) string
}

var (
	dotLeaderRe   = regexp.MustCompile(`\.{3,}`)
	multiSpaceRe  = regexp.MustCompile(` {2,}`)
	blankLinesRe  = regexp.MustCompile(`\n{3,}`)
	guidelineRe   = regexp.MustCompile(`Guideline:`)
	guidelineEnd  = regexp.MustCompile(`\n[A-Z]|\n\nC\d+`)
	maintenanceRe = regexp.MustCompile(`(?i)Payments\s+.*?Maintenance\s+\d{4}\s*-\s*\d{4}.*?(?:\n|$)`)
	segApprovalRe = regexp.MustCompile(`(?i)Approved\s+by\s+the\s+Payments\s+SEG.*?(?:\n|$)`)
	versionLineRe = regexp.MustCompile(`(?i)(pain|pacs|camt)\.\d{3}\.\d{3}\.\d+\s+.*?(?:\n|$)`)
	monthYearRe   = regexp.MustCompile(`(?i)\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`)
)

// cleanRules are applied in order. Line-ending unification and reflow come
// first so the boilerplate patterns see one line per physical line; the
// whitespace collapses run last so removals never leave doubled spaces.
var cleanRules = []cleanRule{
	{"line-endings", unifyLineEndings},
	{"reflow", reflowWrappedLines},
	{"dot-leaders", func(s string) string { return dotLeaderRe.ReplaceAllString(s, " ") }},
	{"guideline-asides", stripGuidelines},
	{"maintenance-headers", func(s string) string { return maintenanceRe.ReplaceAllString(s, "") }},
	{"seg-approval", func(s string) string { return segApprovalRe.ReplaceAllString(s, "") }},
	{"version-stamps", func(s string) string { return versionLineRe.ReplaceAllString(s, "") }},
	{"month-year-stamps", func(s string) string { return monthYearRe.ReplaceAllString(s, "") }},
	{"collapse-spaces", func(s string) string { return multiSpaceRe.ReplaceAllString(s, " ") }},
	{"collapse-blank-lines", func(s string) string { return blankLinesRe.ReplaceAllString(s, "\n\n") }},
}

// Normalize cleans raw page text: unifies line endings, rejoins lines broken
// by the PDF's hard wraps, collapses table dot leaders and repeated
// whitespace, and strips the recurring boilerplate (Guideline asides,
// maintenance headers, SEG approval footers, version stamps, month-year
// stamps). Stripping a footer can expose a fresh wrap artifact or another
// boilerplate layer, so the rule list runs to a fixed point. Every rule only
// deletes text or rewrites a newline as a space, so a non-converged pass
// shrinks the text or its line count and the loop terminates;
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	prev := ""
	for text != prev {
		prev = text
		for _, rule := range cleanRules {
			text = rule.apply(text)
		}
		text = strings.TrimSpace(text)
	}
	return text
}

func unifyLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reflowWrappedLines replaces a single line break with a space unless the
// break starts a genuine boundary: a blank line, a bullet, or a line whose
// first significant rune is a capital letter, a digit, or an angle bracket.
// Those are the shapes headings, list items, and table rows take in the
// source PDFs; everything else is a hard-wrap artifact.
func reflowWrappedLines(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\n' {
			b.WriteRune(r)
			continue
		}
		if i > 0 && runes[i-1] == '\n' {
			b.WriteRune('\n')
			continue
		}
		if keepBreak(runes[i+1:]) {
			b.WriteRune('\n')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func keepBreak(rest []rune) bool {
	if len(rest) == 0 {
		return false
	}
	if rest[0] == '\n' {
		return true
	}
	for _, r := range rest {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			continue
		case r == '•', r == '<':
			return true
		case r >= 'A' && r <= 'Z':
			return true
		case r >= '0' && r <= '9':
			return true
		default:
			return false
		}
	}
	return false
}

// stripGuidelines removes "Guideline:" explanatory asides. An aside runs from
// the marker to the next line starting with a capital letter, the next
// constraint heading, or end of text; the terminator itself is kept.
func stripGuidelines(s string) string {
	for {
		loc := guidelineRe.FindStringIndex(s)
		if loc == nil {
			return s
		}
		rest := s[loc[1]:]
		end := len(s)
		if term := guidelineEnd.FindStringIndex(rest); term != nil {
			end = loc[1] + term[0]
		}
		s = s[:loc[0]] + s[end:]
	}
}
