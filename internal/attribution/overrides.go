package attribution

import (
	"regexp"
	"strings"
)

// Document-level overrides bind speakers to quotes that the per-quote
// strategies could not resolve. They run after per-quote resolution.

var (
	// `Senator Hashmi released the following statement` — the statement
	// format binds every unattributed quote in the document to the subject.
	statementRx = regexp.MustCompile(`([A-Z][\w.'\x{2019}-]+(?:\s+[A-Z][\w.'\x{2019}-]+){0,3})\s+(?:released|issued)\s+(?:the\s+following\s+|a\s+)?statement`)

	endorseHeadlineRx = regexp.MustCompile(`(?i)\bendorse[sd]?\b|\bendorsement\b`)
	endorseOrgRx      = regexp.MustCompile(`(?i)^(.{2,60}?)\s+endorse[sd]?\b`)

	// `Jane Doe, Executive Director, said` — the human spokesperson for an
	// endorsing organization.
	spokespersonRx = regexp.MustCompile(`([A-Z][\w.'\x{2019}-]+\s+[A-Z][\w.'\x{2019}-]+),\s+([A-Z][^,.:\n]{2,60}?),?\s+(?:` + attributionVerbs + `)`)
)

// override is a document-level speaker binding.
type override struct {
	source string // "statement", "subhead", "endorsement"
	speaker
}

// detectOverrides inspects the whole document for bindings that apply to
// unattributed quotes. The first detected override wins, in the order:
// statement format, subhead speaker, endorsement speaker.
func detectOverrides(headline, lead, fullText string, subhead *speaker) *override {
	if m := statementRx.FindStringSubmatch(lead); m != nil {
		name, title := splitNameTitle(m[1])
		if name != "" {
			return &override{
				source:  "statement",
				speaker: speaker{name: name, title: title, attribution: strings.TrimSpace(m[0])},
			}
		}
	}

	if subhead != nil && subhead.name != "" {
		return &override{source: "subhead", speaker: *subhead}
	}

	if endorseHeadlineRx.MatchString(headline) {
		if sp := endorsementSpeaker(headline, fullText); sp != nil {
			return &override{source: "endorsement", speaker: *sp}
		}
	}

	return nil
}

// endorsementSpeaker finds the actual human spokesperson in the body of an
// endorsement release, falling back to the endorsing organization name
// from the headline.
func endorsementSpeaker(headline, fullText string) *speaker {
	if m := spokespersonRx.FindStringSubmatch(fullText); m != nil {
		name := strings.TrimSpace(m[1])
		if !isPronounOrStopword(name) {
			return &speaker{
				name:        name,
				title:       strings.TrimSpace(m[2]),
				attribution: strings.TrimSpace(m[0]),
			}
		}
	}
	if m := endorseOrgRx.FindStringSubmatch(headline); m != nil {
		org := strings.TrimSpace(m[1])
		if org != "" {
			return &speaker{name: org, attribution: headline}
		}
	}
	return nil
}
