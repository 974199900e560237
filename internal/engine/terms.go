// File path: internal/engine/terms.go
package engine

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	tagTermRe   = regexp.MustCompile(`<([A-Za-z0-9]+)>`)
	allCapsRe   = regexp.MustCompile(`\b[A-Z][A-Z0-9_]+\b`)
	camelCaseRe = regexp.MustCompile(`\b([A-Z][a-z]+(?:[A-Z][a-z]*)*)\b`)
	codeTermRe  = regexp.MustCompile(`(?i)\bC\d+\b`)
)

// ExtractSearchTerms pulls candidate lookup terms out of a query: XML tag
// contents, all-caps tokens, constraint codes, CamelCase identifiers, and
// PascalCase compounds synthesized from runs of capitalized words. Candidates
// keep their insertion order and are de-duplicated; redundant ones are kept
// because downstream lookups try each in turn until one matches.
func ExtractSearchTerms(query string) []string {
	q := strings.TrimSpace(query)
	var candidates []string

	for _, m := range tagTermRe.FindAllStringSubmatch(q, -1) {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, allCapsRe.FindAllString(q, -1)...)
	for _, m := range codeTermRe.FindAllString(q, -1) {
		candidates = append(candidates, strings.ToUpper(m))
	}
	for _, m := range camelCaseRe.FindAllStringSubmatch(q, -1) {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, compoundNames(q)...)

	var out []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// compoundNames joins runs of 2-4 consecutive capitalized words into single
// PascalCase tokens, so "Group Header" also yields "GroupHeader".
func compoundNames(q string) []string {
	words := strings.Fields(q)
	var out []string
	for i := range words {
		for length := 2; length <= 4; length++ {
			if i+length > len(words) {
				break
			}
			window := words[i : i+length]
			if !allCapitalized(window) {
				continue
			}
			var b strings.Builder
			for _, w := range window {
				b.WriteString(capitalize(w))
			}
			out = append(out, b.String())
		}
	}
	return out
}

func allCapitalized(words []string) bool {
	for _, w := range words {
		if w == "" {
			continue
		}
		if !unicode.IsUpper([]rune(w)[0]) {
			return false
		}
	}
	return true
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	runes := []rune(strings.ToLower(w))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
