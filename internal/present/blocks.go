// File path: internal/present/blocks.go
package present

import (
	"regexp"
	"strings"
	"unicode"
)

const blockSnippetCap = 8000

var (
	nextBlockHeadingRe = regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+[A-Za-z][A-Za-z0-9\s]+?\s*<[^>]+>\s*$`)
	snippetTitleRe     = regexp.MustCompile(`(?im)^\s*\d*(?:\.\d+)*\s*(.+?<[^>]+>)\s*$`)
	queryTagRe         = regexp.MustCompile(`<\s*([A-Za-z0-9]+)\s*>`)
	queryCamelRe       = regexp.MustCompile(`\b([A-Z][a-z]+(?:[A-Z][a-z]*)+)\b`)
	whitespaceRunRe    = regexp.MustCompile(`\s+`)

	definitionLabelRe = regexp.MustCompile(`(?i)Definition:`)
	usageLabelRe      = regexp.MustCompile(`(?i)Usage:`)

	// fieldStops terminate a Definition or Usage value: the next labeled
	// field or the next element heading.
	fieldStops = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\n\s*Usage:`),
		regexp.MustCompile(`(?i)\n\s*Datatype:`),
		regexp.MustCompile(`(?i)\n\s*Presence:`),
		regexp.MustCompile(`\n\s*\d+(?:\.\d+)*\s+[A-Z]`),
	}
)

// extractBlockSnippet carves one building-block chunk out of the full blocks
// section text, located by XML tag (preferred) or element name. Matching is
// tried strictest first: numbered heading with the exact tag, unnumbered
// heading with the tag, heading with the element name, then a bare tag
// occurrence with 200 bytes of leading context to catch its heading line.
// The snippet ends at the next block heading or the size cap.
func extractBlockSnippet(blocksText, xmlTag, elementName string) string {
	if blocksText == "" {
		return ""
	}
	start := -1

	if xmlTag != "" {
		quoted := regexp.QuoteMeta(xmlTag)
		numbered := regexp.MustCompile(`(?im)^\s*\d+(?:\.\d+)*\s+.*?<\s*` + quoted + `\s*>\s*$`)
		if m := numbered.FindStringIndex(blocksText); m != nil {
			start = m[0]
		}
		if start < 0 {
			plain := regexp.MustCompile(`(?im)^\s*[A-Z][A-Za-z]+\s*<\s*` + quoted + `\s*>\s*$`)
			if m := plain.FindStringIndex(blocksText); m != nil {
				start = m[0]
			}
		}
	}

	if start < 0 && elementName != "" {
		quoted := regexp.QuoteMeta(elementName)
		named := regexp.MustCompile(`(?im)^\s*\d*(?:\.\d+)*\s*` + quoted + `\s*<[^>]+>\s*$`)
		if m := named.FindStringIndex(blocksText); m != nil {
			start = m[0]
		}
		if start < 0 {
			loose := regexp.MustCompile(`(?im)^\s*` + quoted + `\s*<[^>]+>`)
			if m := loose.FindStringIndex(blocksText); m != nil {
				start = m[0]
			}
		}
	}

	if start < 0 && xmlTag != "" {
		bare := regexp.MustCompile(`(?i)<\s*` + regexp.QuoteMeta(xmlTag) + `\s*>`)
		if m := bare.FindStringIndex(blocksText); m != nil {
			start = m[0] - 200
			if start < 0 {
				start = 0
			}
		}
	}

	if start < 0 {
		return ""
	}

	tail := blocksText[start:]
	end := len(blocksText)
	if len(tail) > 1 {
		if m := nextBlockHeadingRe.FindStringIndex(tail[1:]); m != nil {
			end = start + 1 + m[0]
		} else if start+blockSnippetCap < end {
			end = start + blockSnippetCap
		}
	}
	return strings.TrimSpace(blocksText[start:end])
}

// parseDefinitionUsage pulls the Definition and Usage field values out of a
// block snippet. Either result may be empty; a missing Usage is never
// borrowed from a neighboring element.
func parseDefinitionUsage(snippet string) (string, string) {
	if snippet == "" {
		return "", ""
	}
	s := strings.ReplaceAll(strings.ReplaceAll(snippet, "\r\n", "\n"), "\r", "\n")
	definition := labeledValue(s, definitionLabelRe)
	usage := labeledValue(s, usageLabelRe)
	return collapseWhitespace(definition), collapseWhitespace(usage)
}

func labeledValue(s string, label *regexp.Regexp) string {
	loc := label.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	rest := s[loc[1]:]
	end := len(rest)
	for _, stop := range fieldStops {
		if m := stop.FindStringIndex(rest); m != nil && m[0] < end {
			end = m[0]
		}
	}
	return strings.TrimSpace(rest[:end])
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRunRe.ReplaceAllString(s, " "))
}

// snippetTitle extracts a display title from the snippet's heading line,
// e.g. "GroupHeader <GrpHdr>" without the section numbering.
func snippetTitle(snippet string) string {
	if m := snippetTitleRe.FindStringSubmatch(snippet); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// xmlTagFromQuery returns the first angle-bracketed tag in the query, without
// brackets.
func xmlTagFromQuery(query string) string {
	if m := queryTagRe.FindStringSubmatch(query); m != nil {
		return m[1]
	}
	return ""
}

var questionNoise = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(what is|show|explain|describe|tell me about|give me|find)\b`),
	regexp.MustCompile(`(?i)\bmessage building blocks?\b`),
	regexp.MustCompile(`(?i)\bin\b`),
	regexp.MustCompile(`(?i)\bfor\b`),
	regexp.MustCompile(`(?i)\bof\b`),
}

var nameStopwords = map[string]bool{"the": true, "and": true, "this": true, "that": true}

// elementNameFromQuery strips question phrasing, the message code, and XML
// tags from the query and returns the element name the user is asking about,
// preferring an existing CamelCase token over a synthesized one.
func elementNameFromQuery(query, messageCode string) string {
	cleaned := query
	for _, re := range questionNoise {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	if messageCode != "" {
		cleaned = strings.ReplaceAll(cleaned, messageCode, "")
	}
	cleaned = queryTagRe.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if m := queryCamelRe.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}

	var parts []string
	for _, w := range strings.Fields(cleaned) {
		trimmed := strings.Trim(w, ",.?!")
		if len(trimmed) <= 2 || nameStopwords[strings.ToLower(trimmed)] {
			continue
		}
		runes := []rune(strings.ToLower(trimmed))
		runes[0] = unicode.ToUpper(runes[0])
		parts = append(parts, string(runes))
	}
	return strings.Join(parts, "")
}
