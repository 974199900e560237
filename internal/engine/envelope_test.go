// File path: internal/engine/envelope_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/isodocs/isonav/internal/registry"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	in := &Envelope{
		MessageCode:  "pacs.004",
		Definition:   "PaymentReturn - return of an unaccepted or rejected payment.",
		PDFFile:      "pacs_messages.pdf",
		Intent:       "constraints",
		WantsDetails: true,
		TargetPage:   157,
		TargetTerm:   "C17",
		SectionPages: []SectionRange{
			{Section: registry.Constraints, Bounds: PageBounds{Start: 157, End: 164}},
		},
		Content: []SectionContent{
			{Name: "EXTRACTED", Text: "C17 SomeRule\nBody line one.\nBody line two."},
			{Name: "CONSTRAINTS", Text: "C1 First\nC2 Second"},
		},
	}

	out := ParseEnvelope(in.Encode())
	if out.MessageCode != in.MessageCode {
		t.Fatalf("message code: got %q", out.MessageCode)
	}
	if out.Definition != in.Definition {
		t.Fatalf("definition: got %q", out.Definition)
	}
	if out.PDFFile != in.PDFFile {
		t.Fatalf("pdf file: got %q", out.PDFFile)
	}
	if out.Intent != in.Intent {
		t.Fatalf("intent: got %q", out.Intent)
	}
	if !out.WantsDetails {
		t.Fatalf("wants details lost")
	}
	if out.TargetPage != 157 || out.TargetTerm != "C17" {
		t.Fatalf("target lost: page %d term %q", out.TargetPage, out.TargetTerm)
	}
	if len(out.SectionPages) != 1 {
		t.Fatalf("section pages: got %v", out.SectionPages)
	}
	sr := out.SectionPages[0]
	if sr.Section != registry.Constraints || sr.Bounds.Start != 157 || sr.Bounds.End != 164 {
		t.Fatalf("section range: got %+v", sr)
	}
	if len(out.Content) != 2 {
		t.Fatalf("content blocks: got %d", len(out.Content))
	}
	if out.Content[0].Name != "EXTRACTED" || out.Content[0].Text != in.Content[0].Text {
		t.Fatalf("extracted block: got %+v", out.Content[0])
	}
	if out.Content[1].Name != "CONSTRAINTS" || out.Content[1].Text != in.Content[1].Text {
		t.Fatalf("constraints block: got %+v", out.Content[1])
	}
}

func TestEnvelopeEncodeOmitsEmptyFields(t *testing.T) {
	env := &Envelope{MessageCode: "pacs.008", Definition: "def", Intent: "structure"}
	encoded := env.Encode()
	if strings.Contains(encoded, "PDF_FILE:") {
		t.Fatalf("empty pdf file encoded: %q", encoded)
	}
	if strings.Contains(encoded, "TARGET_PAGE:") || strings.Contains(encoded, "TARGET_TERM:") {
		t.Fatalf("empty target encoded: %q", encoded)
	}
	if !strings.Contains(encoded, "WANTS_DETAILS:false") {
		t.Fatalf("wants details missing: %q", encoded)
	}
}

func TestParseEnvelopeTolerant(t *testing.T) {
	out := ParseEnvelope("MESSAGE_CODE:pain.001\nBOGUS_KEY:x\nSECTION_PAGES:broken\nQUERY_INTENT:all")
	if out.MessageCode != "pain.001" || out.Intent != "all" {
		t.Fatalf("tolerant parse failed: %+v", out)
	}
	if len(out.SectionPages) != 0 {
		t.Fatalf("malformed section range kept: %v", out.SectionPages)
	}
}
