// File path: internal/engine/section_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/isodocs/isonav/internal/registry"
)

func TestFullSectionConstraintsTrimmed(t *testing.T) {
	eng := newFixtureEngine(t)
	got := eng.FullSection("pacs.002", registry.Constraints)
	want := "C1 GroupAndStatus Rule body text one.\nC2 OriginalGroupInformation Rule body two."
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFullSectionFunctionalityStopsAtStructure(t *testing.T) {
	eng := newFixtureEngine(t)
	got := eng.FullSection("pacs.002", registry.Functionality)
	if !strings.Contains(got, "The status report is sent by an instructed agent.") {
		t.Fatalf("scope text missing: %q", got)
	}
	if strings.Contains(got, "Structure") {
		t.Fatalf("functionality absorbed the structure section: %q", got)
	}
}

func TestFullSectionBlocksPlainJoin(t *testing.T) {
	eng := newFixtureEngine(t)
	got := eng.FullSection("pacs.002", registry.Blocks)
	if !strings.HasPrefix(got, "4.4 Message Building Blocks") {
		t.Fatalf("unexpected start: %q", got)
	}
	if !strings.Contains(got, "<PmtInf>") {
		t.Fatalf("full blocks section should keep nested blocks: %q", got)
	}
}

func TestFullSectionMiss(t *testing.T) {
	eng := newFixtureEngine(t)
	if got := eng.FullSection("acmt.001", registry.Blocks); got != "" {
		t.Fatalf("expected empty for unknown code, got %q", got)
	}
}
