// File path: internal/present/constraints.go
package present

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	constraintHeadingLineRe = regexp.MustCompile(`(?m)^\s*(?:\x{2022}\s*)?(C\d+)[ \t]*([^\n]*)$`)
	standalonePageNumRe     = regexp.MustCompile(`(?m)^\s*\d{1,4}\s*$`)
	extraBlankLinesRe       = regexp.MustCompile(`\n{3,}`)
)

type constraintBlock struct {
	code string
	name string
	body string
}

// splitConstraintBlocks carves the constraints text into per-code blocks.
// Each block runs from its "C<n> Name" heading to the next heading or end of
// text.
func splitConstraintBlocks(text string) []constraintBlock {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	matches := constraintHeadingLineRe.FindAllStringSubmatchIndex(text, -1)
	var blocks []constraintBlock
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := ""
		if m[1] < end {
			body = text[m[1]:end]
		}
		blocks = append(blocks, constraintBlock{
			code: text[m[2]:m[3]],
			name: strings.TrimSpace(text[m[4]:m[5]]),
			body: stripStandalonePageNumbers(body),
		})
	}
	return blocks
}

// stripStandalonePageNumbers removes footer page numbers that survive
// per-page extraction as lone numeric lines inside constraint bodies.
func stripStandalonePageNumbers(s string) string {
	s = standalonePageNumRe.ReplaceAllString(s, "")
	s = extraBlankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// formatAllConstraints renders every constraint block exactly as extracted,
// with a bold "C<n> Name" title per block. Blocks with no body after page
// number cleanup are dropped. Text with no recognizable headings passes
// through unchanged.
func formatAllConstraints(text string) string {
	blocks := splitConstraintBlocks(text)
	if len(blocks) == 0 {
		return strings.TrimSpace(text)
	}
	var out []string
	for _, b := range blocks {
		if b.body == "" {
			continue
		}
		title := fmt.Sprintf("**%s**", b.code)
		if b.name != "" {
			title = fmt.Sprintf("**%s %s**", b.code, b.name)
		}
		out = append(out, title+"\n"+b.body)
	}
	if len(out) == 0 {
		return strings.TrimSpace(text)
	}
	return strings.Join(out, "\n\n")
}

// extractSpecificConstraint returns the single block for the requested code,
// e.g. "C17", rendered like formatAllConstraints renders it.
func extractSpecificConstraint(text, target string) string {
	target = strings.ToUpper(strings.TrimSpace(target))
	if target == "" {
		return ""
	}
	for _, b := range splitConstraintBlocks(text) {
		if b.code != target {
			continue
		}
		title := fmt.Sprintf("**%s**", b.code)
		if b.name != "" {
			title = fmt.Sprintf("**%s %s**", b.code, b.name)
		}
		return title + "\n" + b.body
	}
	return fmt.Sprintf("Constraint %s not found in the source document.", target)
}
