// File path: internal/present/prompts.go
package present

import (
	"fmt"
	"strings"

	"github.com/isodocs/isonav/internal/engine"
)

// The prompts instruct the model to reformat extracted text, never to write
// its own. Each one carries the source passage and forbids additions.

func buildBlockPrompt(target, messageCode, query, blocksContent string) string {
	return fmt.Sprintf(`Extract building block element information from ISO 20022 documentation.

USER ASKED ABOUT: %s in %s
ORIGINAL QUERY: %s

PDF CONTENT:
%s

INSTRUCTIONS:
1. Find the element that matches: %s
2. Look for a heading like "ElementName <Tag>"
3. Extract ONLY what exists in the content:
   - **Definition:** (complete definition text)
   - **Usage:** (only if present; never reuse another element's usage)
4. Respond with the element heading, then the Definition and Usage bullets.
5. Do not add explanations, interpretations, or content from other elements.
6. If the element is not found, respond only with:
   "Element '%s' not found in %s message building blocks."`,
		target, messageCode, query, blocksContent, target, target, messageCode)
}

func buildFieldPrompt(env *engine.Envelope, query string) string {
	var sections []string
	for _, c := range env.Content {
		sections = append(sections, c.Text)
	}
	fieldName := fieldNameFromQuery(query, env.MessageCode)
	return fmt.Sprintf(`Find field information in ISO 20022 documentation.

FIELD: %s in %s

PDF CONTENT:
%s

INSTRUCTIONS:
1. Search for "%s".
2. If found, present its XML tag, cardinality, and definition, keeping the
   exact wording of the source.
3. If not found, respond only with: "Could not find '%s' in %s."`,
		fieldName, env.MessageCode,
		truncate(strings.Join(sections, "\n\n"), 15000),
		fieldName, fieldName, env.MessageCode)
}

func buildOverviewPrompt(env *engine.Envelope) string {
	var b strings.Builder
	for _, c := range env.Content {
		fmt.Fprintf(&b, "## %s\n%s\n\n", c.Name, c.Text)
	}
	return fmt.Sprintf(`Present the complete documentation for ISO 20022 message %s.

DEFINITION: %s

PDF CONTENT:
%s

INSTRUCTIONS:
1. Present the complete content; do not summarize or truncate.
2. Keep the exact wording of the source, including Scope, Usage, and Outline.
3. Use headings and bullet points for readability only.`,
		env.MessageCode, env.Definition, truncate(b.String(), 15000))
}

var fieldQueryKeywords = []string{"what is", "explain", "describe", "tell me about", "show"}

// fieldNameFromQuery trims the question phrasing and message code from the
// query, leaving the field the user asked about.
func fieldNameFromQuery(query, messageCode string) string {
	name := strings.ToLower(query)
	for _, kw := range fieldQueryKeywords {
		if _, after, ok := strings.Cut(name, kw); ok {
			name = strings.TrimSpace(after)
			break
		}
	}
	name = strings.ReplaceAll(name, strings.ToLower(messageCode), "")
	for _, filler := range []string{" in ", " for "} {
		name = strings.ReplaceAll(name, filler, " ")
	}
	return strings.TrimSpace(name)
}
