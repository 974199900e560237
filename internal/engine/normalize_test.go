// File path: internal/engine/normalize_test.go
package engine

import (
	"strings"
	"testing"
)

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestNormalizeReflow(t *testing.T) {
	in := "This sentence is\nwrapped by the extractor"
	want := "This sentence is wrapped by the extractor"
	if got := Normalize(in); got != want {
		t.Fatalf("reflow failed: got %q", got)
	}
}

func TestNormalizeKeepsStructuralBreaks(t *testing.T) {
	cases := []string{
		"Heading One\nHeading Two",
		"Intro line\n<GrpHdr>",
		"Intro line\n9.1.0 Heading",
		"Bullet intro\n• first item",
	}
	for _, in := range cases {
		got := Normalize(in)
		if got != in {
			t.Fatalf("structural break lost: in %q got %q", in, got)
		}
	}
}

func TestNormalizeDotLeaders(t *testing.T) {
	in := "Structure.........441"
	want := "Structure 441"
	if got := Normalize(in); got != want {
		t.Fatalf("dot leaders: got %q", got)
	}
}

func TestNormalizeStripsGuidelines(t *testing.T) {
	in := "C1 Rule body text.\nGuideline: an explanatory aside that spans words\nNext constraint text"
	want := "C1 Rule body text.\n\nNext constraint text"
	if got := Normalize(in); got != want {
		t.Fatalf("guideline strip: got %q", got)
	}
}

func TestNormalizeStripsBoilerplate(t *testing.T) {
	in := "Keep this line\nApproved by the Payments SEG on 10 June 2021\nAnd this line"
	got := Normalize(in)
	if got != "Keep this line\nAnd this line" {
		t.Fatalf("seg approval strip: got %q", got)
	}
}

func TestNormalizeCollapsesBlankLines(t *testing.T) {
	in := "Alpha\n\n\n\nBeta"
	want := "Alpha\n\nBeta"
	if got := Normalize(in); got != want {
		t.Fatalf("blank collapse: got %q", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Structure.........441",
		"This sentence is\nwrapped by the extractor",
		"C1 Rule body.\nGuideline: aside text here\nNext line",
		"Keep this\nApproved by the Payments SEG on 10 June 2021\nAnd that",
		"Alpha   with   runs\n\n\n\nBeta",
		strings.Repeat("January ", 6) + strings.Repeat("2024 ", 6),
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: first %q second %q", in, once, twice)
		}
	}
}

func TestNormalizeConvergesOnNestedStamps(t *testing.T) {
	// Each pass removes one month-year pair and makes the next pair
	// adjacent; the loop must keep going until nothing changes.
	in := strings.Repeat("January ", 6) + strings.Repeat("2024 ", 6)
	if got := Normalize(in); got != "" {
		t.Fatalf("nested stamps not fully removed: %q", got)
	}
}
