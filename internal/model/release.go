package model

// UnknownSpeaker is the sentinel used when no attribution could be resolved.
// Quote.SpeakerName is never the empty string.
const UnknownSpeaker = "Unknown Speaker"

// ParsedRelease is the structured result of parsing one press release.
// It is built fresh per Parse call and never mutated after it is returned.
type ParsedRelease struct {
	Headline       string         `json:"headline"`
	Subhead        string         `json:"subhead,omitempty"`
	Dateline       Dateline       `json:"dateline"`
	LeadParagraph  string         `json:"lead_paragraph"`
	BodyParagraphs []string       `json:"body_paragraphs"`
	Quotes         []Quote        `json:"quotes"`
	Claims         []FactualClaim `json:"claims,omitempty"`
	ContactInfo    string         `json:"contact_info,omitempty"`
	ReleaseType    ReleaseType    `json:"release_type"`
	Subtypes       []Subtype      `json:"subtypes,omitempty"`
	Issues         []IssueTag     `json:"issues,omitempty"`
}

// Dateline holds the location/date header of a release.
// Format records which shape was recognized: "single-line" or "split".
type Dateline struct {
	Date     string `json:"date,omitempty"`
	Location string `json:"location,omitempty"`
	Format   string `json:"format,omitempty"`
}

// IsZero reports whether no dateline was found.
func (d Dateline) IsZero() bool {
	return d.Date == "" && d.Location == ""
}

// Span is a half-open [Start, End) character-offset range into the
// original input text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Quote is a quoted span with its resolved speaker.
// Position always locates QuoteText verbatim in the original input.
type Quote struct {
	QuoteText       string `json:"quote_text"`
	SpeakerName     string `json:"speaker_name"`
	SpeakerTitle    string `json:"speaker_title,omitempty"`
	FullAttribution string `json:"full_attribution,omitempty"`
	Position        Span   `json:"source_position"`
	IsContinuation  bool   `json:"is_continuation"`
}

// IsAttributed reports whether the quote has a resolved speaker.
func (q Quote) IsAttributed() bool {
	return q.SpeakerName != "" && q.SpeakerName != UnknownSpeaker
}

// ReleaseType classifies the release as a whole.
type ReleaseType struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// Subtype is a secondary classification with its own confidence.
type Subtype struct {
	Subtype    string  `json:"subtype"`
	Confidence float64 `json:"confidence"`
}

// IssueTag marks a policy issue the release touches.
type IssueTag struct {
	Issue      string  `json:"issue"`
	Confidence float64 `json:"confidence"`
}
