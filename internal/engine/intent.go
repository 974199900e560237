// File path: internal/engine/intent.go
package engine

import (
	"regexp"
	"strings"

	"github.com/isodocs/isonav/internal/registry"
)

// Intent labels what a query is asking for and drives which sections the
// assembler fetches and whether it returns content or only a page pointer.
type Intent string

const (
	IntentStructureLocation Intent = "structure_location"
	IntentBlocksLocation    Intent = "blocks_location"
	IntentConstraints       Intent = "constraints"
	IntentSpecificBlock     Intent = "specific_building_block"
	IntentSpecificField     Intent = "specific_field"
	IntentFunctionalityFull Intent = "functionality_full"
	IntentAll               Intent = "all"
)

var (
	xmlTagRe         = regexp.MustCompile(`<[A-Za-z]+>`)
	constraintCodeRe = regexp.MustCompile(`(?i)\bC\d+\b`)

	blockKeywords      = []string{"message building block", "message building blocks", "building blocks"}
	blockNameKeywords  = []string{"assignment", "grouphdr", "grphdr", "case", "underlying", "justification"}
	constraintKeywords = []string{"constraint", "constraints", "rule", "rules"}
	allKeywords        = []string{"everything", "complete", "all information"}
	inquiryKeywords    = []string{"what is", "explain", "describe", "tell me about", "definition of", "show"}
)

// Classify maps a free-text query to an intent, the ordered sections that
// intent requires, and whether the caller wants extracted content or only a
// location pointer. The cascade is purely lexical and evaluated top to
// bottom; the first matching rule wins, so structure and building-block
// phrasing pre-empt the generic constraint and field rules.
func Classify(query string) (Intent, []registry.Section, bool) {
	q := strings.ToLower(query)

	if strings.Contains(q, "structure") {
		return IntentStructureLocation, []registry.Section{registry.Structure}, false
	}

	if containsAny(q, blockKeywords) {
		if xmlTagRe.MatchString(q) || containsAny(q, blockNameKeywords) {
			return IntentSpecificBlock, []registry.Section{registry.Blocks}, true
		}
		return IntentBlocksLocation, []registry.Section{registry.Blocks}, false
	}

	// Whether the query names a specific code (e.g. C17) is resolved by the
	// assembler, not here: general and specific constraint queries share an
	// intent.
	if containsAny(q, constraintKeywords) || constraintCodeRe.MatchString(q) {
		return IntentConstraints, []registry.Section{registry.Constraints}, true
	}

	if containsAny(q, allKeywords) {
		return IntentAll, []registry.Section{registry.Functionality, registry.Structure, registry.Constraints, registry.Blocks}, true
	}

	if containsAny(q, inquiryKeywords) && mentionsKnownCode(q) && hasSpecificElement(query) {
		return IntentSpecificField, []registry.Section{registry.Structure, registry.Blocks, registry.Constraints}, true
	}

	return IntentFunctionalityFull, []registry.Section{registry.Functionality}, true
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

func mentionsKnownCode(q string) bool {
	return len(ExtractMessageCodes(q)) > 0
}

// hasSpecificElement reports whether the query points at a single schema
// element: either an explicit XML tag, or at least two capitalized words.
// The capitalization check runs on the raw query, not the lowercased copy.
func hasSpecificElement(query string) bool {
	if xmlTagRe.MatchString(query) {
		return true
	}
	count := 0
	for _, w := range strings.Fields(query) {
		r := []rune(w)[0]
		if r >= 'A' && r <= 'Z' {
			count++
		}
	}
	return count > 1
}
