// File path: internal/present/present.go

// Package present turns the engine's envelope into the final user-facing
// markdown. Constraint, functionality, and building-block content is
// rendered deterministically, byte-for-byte from the extracted text; a
// generative provider is consulted only for loosely-structured intents, and
// its failure always degrades to raw extracted content.
package present

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/isodocs/isonav/internal/common"
	"github.com/isodocs/isonav/internal/engine"
	"github.com/isodocs/isonav/internal/llm"
)

var (
	constraintCodeOnlyRe = regexp.MustCompile(`^C\d+$`)
	segFooterRe          = regexp.MustCompile(`(?i)Approved by the Payments SEG.*?(?:\n|$)`)
	maintenanceFooterRe  = regexp.MustCompile(`(?i)Exceptions and Investigations\s*-\s*Maintenance.*?(?:\n|$)`)
	funcHeadingGapRe     = regexp.MustCompile(`\n(Scope|Usage|Outline)\n`)
	funcListGapRe        = regexp.MustCompile(`\n([A-E]\. )`)
	funcHeadingBoldRe    = regexp.MustCompile(`(?m)(^|\n)(MessageDefinition Functionality|Scope|Usage|Outline)(\s*\n)`)

	// Any mention of SWIFT MT messages in a model completion is a
	// hallucination: the source documents cover ISO 20022 only.
	hallucinationMarkers = []string{"mt104", "mt103", "swift mt"}
)

// Formatter renders envelopes. publicURL is the externally visible base URL
// used for the PDF download footer.
type Formatter struct {
	provider  llm.Provider
	publicURL string
}

func New(provider llm.Provider, publicURL string) *Formatter {
	return &Formatter{provider: provider, publicURL: strings.TrimRight(publicURL, "/")}
}

// Format produces the final answer for a raw engine reply. Sentinel-prefixed
// replies pass through with their prefix stripped.
func (f *Formatter) Format(ctx context.Context, raw, query string) string {
	if strings.HasPrefix(raw, engine.SmallTalkPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(raw, engine.SmallTalkPrefix))
	}
	if strings.HasPrefix(raw, "ERROR:") {
		if _, msg, ok := strings.Cut(raw, "|"); ok {
			return msg
		}
		return raw
	}

	env := engine.ParseEnvelope(raw)
	pageRef := f.pageRef(env)
	link := f.downloadLink(env)

	if !env.WantsDetails {
		return fmt.Sprintf("**%s**\n\n%s\n\n%s\n\n%s\n\nOpen the link above to view the detailed content in the PDF.",
			env.MessageCode, env.Definition, pageRef, link)
	}
	if len(env.Content) == 0 {
		return fmt.Sprintf("**%s**\n\n%s\n\n%s\n\n%s\n\nNo detailed content extracted. Please refer to the PDF.",
			env.MessageCode, env.Definition, pageRef, link)
	}

	footer := fmt.Sprintf("\n\n---\n\n%s\n\n%s", pageRef, link)

	switch env.Intent {
	case "constraints":
		return f.renderConstraints(env) + footer
	case "functionality_full":
		return f.renderFunctionality(env, pageRef, link)
	case "specific_building_block":
		return f.renderBuildingBlock(ctx, env, query, pageRef, link)
	default:
		return f.renderWithModel(ctx, env, query, pageRef, link)
	}
}

// renderConstraints is fully deterministic: the extracted text is reshaped,
// never rephrased.
func (f *Formatter) renderConstraints(env *engine.Envelope) string {
	if env.TargetTerm != "" && constraintCodeOnlyRe.MatchString(env.TargetTerm) {
		src := contentByName(env, "EXTRACTED")
		if src == "" {
			src = contentByName(env, "CONSTRAINTS")
		}
		return extractSpecificConstraint(src, env.TargetTerm)
	}
	return formatAllConstraints(contentByName(env, "CONSTRAINTS"))
}

func (f *Formatter) renderFunctionality(env *engine.Envelope, pageRef, link string) string {
	content := contentByName(env, "FUNCTIONALITY")
	if content == "" {
		return fmt.Sprintf("**%s**\n\n%s\n\n%s\n\n%s\n\nNo functionality content found.",
			env.MessageCode, env.Definition, pageRef, link)
	}
	content = scrubFooters(content)
	content = funcHeadingGapRe.ReplaceAllString(content, "\n\n${1}\n")
	content = funcListGapRe.ReplaceAllString(content, "\n\n${1}")
	content = funcHeadingBoldRe.ReplaceAllString(content, "${1}**${2}**${3}")
	return fmt.Sprintf("**%s**\n\n%s\n\n%s\n\n---\n\n%s\n\n%s",
		env.MessageCode, env.Definition, content, pageRef, link)
}

func (f *Formatter) renderBuildingBlock(ctx context.Context, env *engine.Envelope, query, pageRef, link string) string {
	logger := common.Logger()
	blocksContent := contentByName(env, "EXTRACTED")
	if blocksContent == "" {
		blocksContent = contentByName(env, "BLOCKS")
	}

	xmlTag := xmlTagFromQuery(query)
	elementName := elementNameFromQuery(query, env.MessageCode)
	snippet := extractBlockSnippet(blocksContent, xmlTag, elementName)

	if snippet != "" {
		definition, usage := parseDefinitionUsage(snippet)
		definition = collapseWhitespace(scrubFooters(definition))
		usage = collapseWhitespace(scrubFooters(usage))

		if definition != "" || usage != "" {
			title := snippetTitle(snippet)
			switch {
			case title != "":
			case xmlTag != "" && elementName != "":
				title = fmt.Sprintf("%s <%s>", elementName, xmlTag)
			case xmlTag != "":
				title = fmt.Sprintf("<%s>", xmlTag)
			case elementName != "":
				title = elementName
			default:
				title = "Requested element"
			}
			var b strings.Builder
			fmt.Fprintf(&b, "**%s**\n", title)
			if definition != "" {
				fmt.Fprintf(&b, "\n- **Definition:** %s\n", definition)
			}
			if usage != "" {
				fmt.Fprintf(&b, "\n- **Usage:** %s\n", usage)
			}
			return fmt.Sprintf("%s\n---\n\n%s\n\n%s", b.String(), pageRef, link)
		}
	}

	// The heading grammar did not resolve the element; hand the raw blocks
	// text to the model with strict extraction instructions.
	logger.Debug("present: block extraction fell back to model", "tag", xmlTag, "element", elementName)
	target := xmlTag
	if target == "" {
		target = elementName
	}
	if target == "" {
		target = "the requested element"
	}
	prompt := buildBlockPrompt(target, env.MessageCode, query, truncate(blocksContent, 15000))
	answer, err := f.complete(ctx, prompt)
	if err != nil || answer == "" {
		return fmt.Sprintf("**%s**\n\n%s\n\n%s\n\n%s\n\nUnable to extract building block information.",
			env.MessageCode, env.Definition, pageRef, link)
	}
	return fmt.Sprintf("%s\n\n---\n\n%s\n\n%s", answer, pageRef, link)
}

// renderWithModel handles the loosely-structured intents (specific_field,
// "all", and any future catch-all) where light reformatting by a model is
// acceptable. Hallucinated SWIFT MT content and provider failures both
// degrade to raw extracted sections.
func (f *Formatter) renderWithModel(ctx context.Context, env *engine.Envelope, query, pageRef, link string) string {
	var prompt string
	switch env.Intent {
	case "specific_field":
		prompt = buildFieldPrompt(env, query)
	default:
		prompt = buildOverviewPrompt(env)
	}

	answer, err := f.complete(ctx, prompt)
	if err != nil || answer == "" {
		return f.rawFallback(env, pageRef, link)
	}
	lower := strings.ToLower(answer)
	for _, marker := range hallucinationMarkers {
		if strings.Contains(lower, marker) {
			common.Logger().Warn("present: completion discarded, off-standard content", "marker", marker)
			return fmt.Sprintf("**%s**\n\n%s\n\nPlease refer to the PDF.\n\n%s\n\n%s",
				env.MessageCode, env.Definition, pageRef, link)
		}
	}
	return fmt.Sprintf("%s\n\n---\n\n%s\n\n%s", answer, pageRef, link)
}

func (f *Formatter) rawFallback(env *engine.Envelope, pageRef, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n%s\n", env.MessageCode, env.Definition)
	for i, c := range env.Content {
		if i >= 2 {
			break
		}
		fmt.Fprintf(&b, "\n### %s\n%s\n", c.Name, truncate(c.Text, 1000))
	}
	fmt.Fprintf(&b, "\n%s\n\n%s", pageRef, link)
	return b.String()
}

func (f *Formatter) complete(ctx context.Context, prompt string) (string, error) {
	if f.provider == nil {
		return "", fmt.Errorf("no provider configured")
	}
	const system = "You are an ISO 20022 documentation assistant. Reproduce source text exactly; never invent content."
	return f.provider.Complete(ctx, system, truncate(prompt, 20000))
}

func (f *Formatter) pageRef(env *engine.Envelope) string {
	if env.TargetPage > 0 {
		return fmt.Sprintf("**Page: %d**", env.TargetPage)
	}
	if len(env.SectionPages) > 0 {
		var ranges []string
		for _, sr := range env.SectionPages {
			ranges = append(ranges, fmt.Sprintf("%s: pages %d-%d",
				strings.ToUpper(string(sr.Section)), sr.Bounds.Start, sr.Bounds.End))
		}
		return "**Sections:** " + strings.Join(ranges, ", ")
	}
	return ""
}

func (f *Formatter) downloadLink(env *engine.Envelope) string {
	return fmt.Sprintf("Download PDF: %s/pdfs/%s", f.publicURL, env.PDFFile)
}

func contentByName(env *engine.Envelope, name string) string {
	for _, c := range env.Content {
		if c.Name == name {
			return c.Text
		}
	}
	return ""
}

func scrubFooters(s string) string {
	s = segFooterRe.ReplaceAllString(s, "")
	return maintenanceFooterRe.ReplaceAllString(s, "")
}

// truncate clips s to at most max bytes, backing up to a rune boundary so the
// cut never yields invalid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "\n\n[Truncated]"
}
