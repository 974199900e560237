// File path: internal/engine/codes.go
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/isodocs/isonav/internal/registry"
)

// messageCodeRe tolerates a missing or unusual separator between family and
// number, so "pacs008" and "pacs-008" both resolve to "pacs.008".
var messageCodeRe = regexp.MustCompile(`\b(pain|pacs|camt)[\s.\-]?(\d{3})\b`)

// ExtractMessageCodes finds every registered message code mentioned in the
// query, normalized to the canonical "family.NNN" form, de-duplicated in
// order of first appearance. Matches that are not in the registry are
// dropped.
func ExtractMessageCodes(query string) []string {
	matches := messageCodeRe.FindAllStringSubmatch(strings.ToLower(query), -1)
	var codes []string
	seen := make(map[string]struct{})
	for _, m := range matches {
		code := fmt.Sprintf("%s.%s", m[1], m[2])
		if !registry.Known(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		codes = append(codes, code)
	}
	return codes
}
