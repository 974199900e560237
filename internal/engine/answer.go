// File path: internal/engine/answer.go
package engine

import (
	"strings"

	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/registry"
)

var greetings = []string{
	"hi", "hello", "hey",
	"good morning", "good afternoon", "good evening",
	"how are you", "how r u",
	"thanks", "thank you",
}

const smallTalkReply = "Hello! I'm doing well, thank you for asking.\n\n" +
	"I can help you with ISO 20022 messages such as pain.001, pacs.004, camt.029 - " +
	"including definitions, functionality, constraints, structure, and message building blocks.\n\n" +
	"Whenever you're ready, just ask!"

const noCodeReply = "I couldn't identify a specific ISO 20022 message code in your query. " +
	"Please mention a message code like pacs.004, pain.001, or camt.029."

// isSmallTalk reports whether the query equals or starts with a known
// greeting. A greeting prefix on a real question ("hi, what is ...") still
// matches; the caller suppresses the short circuit when a message code is
// present.
func isSmallTalk(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, g := range greetings {
		if q == g || strings.HasPrefix(q, g) {
			return true
		}
	}
	return false
}

// AnswerQuery is the core entry point: it resolves the message code,
// classifies intent, runs the locator, finder, and extractor as the intent
// requires, and returns the encoded envelope, or a sentinel-prefixed string
// for greetings and queries without a recognizable code. It never returns an
// error; every failure mode degrades to an envelope with less content.
func (e *Engine) AnswerQuery(query string) string {
	logger := common.Logger()
	codes := ExtractMessageCodes(query)

	// The greeting check yields to an explicit message code so that
	// "hello world, tell me about pacs.008" is answered, not greeted.
	if len(codes) == 0 {
		if isSmallTalk(query) {
			logger.Debug("engine: small talk detected")
			return SmallTalkPrefix + smallTalkReply
		}
		logger.Info("engine: no message code identified", "query_length", len(query))
		return NoCodePrefix + noCodeReply
	}

	code := codes[0]
	intent, sections, wantsDetails := Classify(query)
	logger.Info("engine: query classified", "code", code, "intent", string(intent), "sections", len(sections))

	definition, _ := registry.Definition(code)
	file, _ := registry.FileFor(code)

	switch intent {
	case IntentBlocksLocation:
		return e.locationEnvelope(code, definition, file, "blocks", registry.Blocks, "Message Building Blocks")
	case IntentStructureLocation:
		return e.locationEnvelope(code, definition, file, "structure", registry.Structure, "Structure")
	}

	env := &Envelope{
		MessageCode:  code,
		Definition:   definition,
		PDFFile:      file,
		Intent:       string(intent),
		WantsDetails: wantsDetails,
	}

	terms := ExtractSearchTerms(query)
	var passage Passage
	var found bool

	// A targeted passage lookup only runs when the query names a concrete
	// target: a constraint code, or a specific building block. Everything
	// else goes straight to full-section extraction.
	wantsConstraintCode := intent == IntentConstraints && constraintCodeRe.MatchString(query)
	if wantsConstraintCode || (intent == IntentSpecificBlock && len(terms) > 0) {
		for _, section := range sections {
			if passage, found = e.FindTerm(code, section, terms); found {
				env.TargetPage = passage.Page
				env.TargetTerm = passage.Term
				logger.Info("engine: target located", "term", passage.Term, "page", passage.Page)
				break
			}
		}
	}

	for _, section := range sections {
		if bounds, ok := SectionBounds(code, section); ok {
			env.SectionPages = append(env.SectionPages, SectionRange{Section: section, Bounds: bounds})
		}
	}

	if wantsDetails {
		if found {
			env.Content = append(env.Content, SectionContent{Name: "EXTRACTED", Text: passage.Text})
		} else {
			for _, section := range sections {
				if content := e.FullSection(code, section); content != "" {
					env.Content = append(env.Content, SectionContent{
						Name: strings.ToUpper(string(section)),
						Text: content,
					})
				}
			}
		}
	}
	return env.Encode()
}

// locationEnvelope builds the minimal envelope for location-only intents: a
// page pointer and source file, no content block.
func (e *Engine) locationEnvelope(code, definition, file, intent string, section registry.Section, term string) string {
	env := &Envelope{
		MessageCode: code,
		Definition:  definition,
		PDFFile:     file,
		Intent:      intent,
	}
	if page, ok := registry.StartPage(code, section); ok {
		env.TargetPage = page
		env.TargetTerm = term
	}
	return env.Encode()
}
