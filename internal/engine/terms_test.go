// File path: internal/engine/terms_test.go
package engine

import "testing"

func containsTerm(terms []string, want string) bool {
	for _, term := range terms {
		if term == want {
			return true
		}
	}
	return false
}

func TestExtractSearchTermsXMLTag(t *testing.T) {
	terms := ExtractSearchTerms("what is <GrpHdr> in pacs.008")
	if len(terms) == 0 || terms[0] != "GrpHdr" {
		t.Fatalf("expected GrpHdr first, got %v", terms)
	}
}

func TestExtractSearchTermsConstraintCode(t *testing.T) {
	terms := ExtractSearchTerms("explain c17")
	if len(terms) != 1 || terms[0] != "C17" {
		t.Fatalf("expected [C17], got %v", terms)
	}
}

func TestExtractSearchTermsCompound(t *testing.T) {
	terms := ExtractSearchTerms("Group Header in pacs.008")
	if !containsTerm(terms, "GroupHeader") {
		t.Fatalf("expected synthesized GroupHeader, got %v", terms)
	}
	if !containsTerm(terms, "Group") || !containsTerm(terms, "Header") {
		t.Fatalf("expected individual words kept, got %v", terms)
	}
}

func TestExtractSearchTermsCamelCase(t *testing.T) {
	terms := ExtractSearchTerms("describe InstructingAgent please")
	if !containsTerm(terms, "InstructingAgent") {
		t.Fatalf("expected InstructingAgent, got %v", terms)
	}
}

func TestExtractSearchTermsDedup(t *testing.T) {
	terms := ExtractSearchTerms("<GrpHdr> GrpHdr")
	count := 0
	for _, term := range terms {
		if term == "GrpHdr" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected single GrpHdr, got %v", terms)
	}
}

func TestExtractSearchTermsEmpty(t *testing.T) {
	if terms := ExtractSearchTerms("tell me about it"); len(terms) != 0 {
		t.Fatalf("expected no terms, got %v", terms)
	}
}
