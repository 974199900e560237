// File path: internal/engine/envelope.go
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/isodocs/isonav/internal/registry"
)

// Sentinel prefixes for replies that bypass the envelope: greetings and
// queries with no identifiable message code. These are user-input
// conditions, not faults.
const (
	SmallTalkPrefix = "CHAT:SMALL_TALK|"
	NoCodePrefix    = "ERROR:NO_MESSAGE_CODE|"
)

const (
	contentStartMarker = "---CONTENT_START---"
	contentEndMarker   = "---CONTENT_END---"
	sectionMarker      = "##SECTION:"
)

// SectionRange records where one section of the answer lives in the source
// document.
type SectionRange struct {
	Section registry.Section
	Bounds  PageBounds
}

// SectionContent is one named block of extracted text. The name is either an
// upper-cased section name or "EXTRACTED" for a targeted passage.
type SectionContent struct {
	Name string
	Text string
}

// Envelope is the contract between the deterministic core and the
// presentation layer: the resolved message metadata, the classified intent,
// optional target pointer, per-section page ranges, and zero or more content
// blocks. The line-oriented wire format produced by Encode is one
// serialization of this record, not the data model itself.
type Envelope struct {
	MessageCode  string
	Definition   string
	PDFFile      string
	Intent       string
	WantsDetails bool
	TargetPage   int
	TargetTerm   string
	SectionPages []SectionRange
	Content      []SectionContent
}

// Encode serializes the envelope as ordered key:value lines followed by a
// delimited content block.
func (e *Envelope) Encode() string {
	var lines []string
	lines = append(lines, "MESSAGE_CODE:"+e.MessageCode)
	lines = append(lines, "DEFINITION:"+e.Definition)
	if e.PDFFile != "" {
		lines = append(lines, "PDF_FILE:"+e.PDFFile)
	}
	lines = append(lines, "QUERY_INTENT:"+e.Intent)
	lines = append(lines, "WANTS_DETAILS:"+strconv.FormatBool(e.WantsDetails))
	if e.TargetPage > 0 {
		lines = append(lines, fmt.Sprintf("TARGET_PAGE:%d", e.TargetPage))
	}
	if e.TargetTerm != "" {
		lines = append(lines, "TARGET_TERM:"+e.TargetTerm)
	}
	for _, sr := range e.SectionPages {
		lines = append(lines, fmt.Sprintf("SECTION_PAGES:%s:%d-%d",
			strings.ToUpper(string(sr.Section)), sr.Bounds.Start, sr.Bounds.End))
	}
	lines = append(lines, contentStartMarker)
	for _, c := range e.Content {
		lines = append(lines, sectionMarker+c.Name+"##")
		lines = append(lines, c.Text)
	}
	lines = append(lines, contentEndMarker)
	return strings.Join(lines, "\n")
}

// ParseEnvelope reconstructs an Envelope from its wire form. Unknown keys
// are skipped; a malformed payload still yields whatever fields were
// readable, mirroring the tolerance of the downstream formatter.
func ParseEnvelope(raw string) *Envelope {
	env := &Envelope{WantsDetails: true}
	var (
		inContent   bool
		currentName string
		currentText []string
	)
	flush := func() {
		if currentName != "" {
			env.Content = append(env.Content, SectionContent{
				Name: currentName,
				Text: strings.Join(currentText, "\n"),
			})
		}
		currentName = ""
		currentText = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case line == contentStartMarker:
			inContent = true
		case line == contentEndMarker:
			flush()
			return env
		case inContent && strings.HasPrefix(line, sectionMarker):
			flush()
			currentName = strings.TrimSuffix(strings.TrimPrefix(line, sectionMarker), "##")
		case inContent && currentName != "":
			currentText = append(currentText, line)
		case strings.HasPrefix(line, "MESSAGE_CODE:"):
			env.MessageCode = strings.TrimPrefix(line, "MESSAGE_CODE:")
		case strings.HasPrefix(line, "DEFINITION:"):
			env.Definition = strings.TrimPrefix(line, "DEFINITION:")
		case strings.HasPrefix(line, "PDF_FILE:"):
			env.PDFFile = strings.TrimPrefix(line, "PDF_FILE:")
		case strings.HasPrefix(line, "QUERY_INTENT:"):
			env.Intent = strings.TrimPrefix(line, "QUERY_INTENT:")
		case strings.HasPrefix(line, "WANTS_DETAILS:"):
			env.WantsDetails = strings.TrimPrefix(line, "WANTS_DETAILS:") == "true"
		case strings.HasPrefix(line, "TARGET_PAGE:"):
			if n, err := strconv.Atoi(strings.TrimPrefix(line, "TARGET_PAGE:")); err == nil {
				env.TargetPage = n
			}
		case strings.HasPrefix(line, "TARGET_TERM:"):
			env.TargetTerm = strings.TrimPrefix(line, "TARGET_TERM:")
		case strings.HasPrefix(line, "SECTION_PAGES:"):
			parts := strings.SplitN(strings.TrimPrefix(line, "SECTION_PAGES:"), ":", 2)
			if len(parts) != 2 {
				continue
			}
			var start, end int
			if _, err := fmt.Sscanf(parts[1], "%d-%d", &start, &end); err != nil {
				continue
			}
			env.SectionPages = append(env.SectionPages, SectionRange{
				Section: registry.Section(strings.ToLower(parts[0])),
				Bounds:  PageBounds{Start: start, End: end},
			})
		}
	}
	flush()
	return env
}
