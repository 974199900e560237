// File path: internal/engine/answer_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/isodocs/isonav/internal/registry"
)

func TestAnswerQuerySmallTalk(t *testing.T) {
	eng := newFixtureEngine(t)
	for _, q := range []string{"hello", "Hello there", "good morning", "thanks"} {
		got := eng.AnswerQuery(q)
		if !strings.HasPrefix(got, SmallTalkPrefix) {
			t.Fatalf("%q: expected small talk, got %q", q, got)
		}
	}
}

func TestAnswerQueryNoCode(t *testing.T) {
	eng := newFixtureEngine(t)
	got := eng.AnswerQuery("what is the settlement date")
	if !strings.HasPrefix(got, NoCodePrefix) {
		t.Fatalf("expected no-code sentinel, got %q", got)
	}
}

func TestAnswerQueryGreetingWithCodeIsAnswered(t *testing.T) {
	eng := newFixtureEngine(t)
	got := eng.AnswerQuery("hello world, tell me about pacs.008")
	if strings.HasPrefix(got, SmallTalkPrefix) {
		t.Fatalf("greeting short-circuited a real question: %q", got)
	}
	if !strings.HasPrefix(got, "MESSAGE_CODE:pacs.008") {
		t.Fatalf("unexpected reply: %q", got)
	}
}

func TestAnswerQueryStructureLocation(t *testing.T) {
	eng := newFixtureEngine(t)
	env := ParseEnvelope(eng.AnswerQuery("structure of pacs.002"))
	if env.MessageCode != "pacs.002" {
		t.Fatalf("unexpected code: %q", env.MessageCode)
	}
	if env.Intent != "structure" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.WantsDetails {
		t.Fatalf("location answer should not carry details")
	}
	if env.TargetPage != 7 || env.TargetTerm != "Structure" {
		t.Fatalf("unexpected target: page %d term %q", env.TargetPage, env.TargetTerm)
	}
	if env.PDFFile != "pacs_messages.pdf" {
		t.Fatalf("unexpected file: %q", env.PDFFile)
	}
}

func TestAnswerQueryBlocksLocation(t *testing.T) {
	eng := newFixtureEngine(t)
	env := ParseEnvelope(eng.AnswerQuery("where are the message building blocks in pacs.002"))
	if env.Intent != "blocks" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.TargetPage != 15 || env.TargetTerm != "Message Building Blocks" {
		t.Fatalf("unexpected target: page %d term %q", env.TargetPage, env.TargetTerm)
	}
}

func TestAnswerQueryAllConstraints(t *testing.T) {
	eng := newFixtureEngine(t)
	env := ParseEnvelope(eng.AnswerQuery("show me all constraints for pacs.002"))
	if env.Intent != "constraints" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.TargetPage != 0 {
		t.Fatalf("general constraint query should not carry a target page")
	}
	if len(env.SectionPages) != 1 || env.SectionPages[0].Section != registry.Constraints {
		t.Fatalf("unexpected section pages: %v", env.SectionPages)
	}
	if env.SectionPages[0].Bounds.Start != 11 || env.SectionPages[0].Bounds.End != 15 {
		t.Fatalf("unexpected bounds: %+v", env.SectionPages[0].Bounds)
	}
	if len(env.Content) != 1 || env.Content[0].Name != "CONSTRAINTS" {
		t.Fatalf("unexpected content: %+v", env.Content)
	}
	if !strings.Contains(env.Content[0].Text, "C1 GroupAndStatus") {
		t.Fatalf("constraint text missing: %q", env.Content[0].Text)
	}
}

func TestAnswerQuerySpecificConstraint(t *testing.T) {
	eng := newFixtureEngine(t)
	env := ParseEnvelope(eng.AnswerQuery("explain C2 in pacs.002"))
	if env.Intent != "constraints" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.TargetPage != 11 || env.TargetTerm != "C2" {
		t.Fatalf("unexpected target: page %d term %q", env.TargetPage, env.TargetTerm)
	}
	if len(env.Content) != 1 || env.Content[0].Name != "EXTRACTED" {
		t.Fatalf("unexpected content: %+v", env.Content)
	}
	if !strings.HasPrefix(env.Content[0].Text, "C2 OriginalGroupInformation") {
		t.Fatalf("unexpected passage: %q", env.Content[0].Text)
	}
}

func TestAnswerQuerySpecificBlock(t *testing.T) {
	eng := newFixtureEngine(t)
	env := ParseEnvelope(eng.AnswerQuery("what is <GrpHdr> in pacs.002 message building blocks"))
	if env.Intent != "specific_building_block" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.TargetPage != 15 || env.TargetTerm != "GrpHdr" {
		t.Fatalf("unexpected target: page %d term %q", env.TargetPage, env.TargetTerm)
	}
	if len(env.Content) != 1 || env.Content[0].Name != "EXTRACTED" {
		t.Fatalf("unexpected content: %+v", env.Content)
	}
	if !strings.Contains(env.Content[0].Text, "Usage: Present once.") {
		t.Fatalf("usage text missing: %q", env.Content[0].Text)
	}
}

func TestAnswerQueryFallsBackToFullSection(t *testing.T) {
	eng := newFixtureEngine(t)
	// The named element does not exist, so the answer degrades to the whole
	// blocks section instead of a targeted passage.
	env := ParseEnvelope(eng.AnswerQuery("what is the Underlying element in pacs.002 message building blocks"))
	if env.Intent != "specific_building_block" {
		t.Fatalf("unexpected intent: %q", env.Intent)
	}
	if env.TargetPage != 0 {
		t.Fatalf("unexpected target page: %d", env.TargetPage)
	}
	if len(env.Content) != 1 || env.Content[0].Name != "BLOCKS" {
		t.Fatalf("unexpected content: %+v", env.Content)
	}
}
