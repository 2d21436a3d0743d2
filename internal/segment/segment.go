package segment

import (
	"regexp"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// Document holds the structural spans of a release. Sections that were not
// found stay as zero values; segmentation never fails.
type Document struct {
	Headline string
	Subhead  string
	Dateline model.Dateline
	Lead     string
	Body     []string
	Contact  string

	// SubheadSpeaker carries speaker info from a `Name: "preview"` subhead,
	// consumed by attribution resolution.
	SubheadSpeaker *SubheadSpeaker

	// BodyStart is the character offset in the original text where the
	// lead paragraph begins. Quote spans before it belong to the header.
	BodyStart int
}

// SubheadSpeaker is the speaker extracted from a quote-preview subhead.
type SubheadSpeaker struct {
	Name    string
	Title   string
	Preview string
}

// Segmenter splits validated text into headline, subhead, dateline, lead,
// body and contact/boilerplate spans.
type Segmenter struct{}

// NewSegmenter creates a segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

var (
	// LOCATION — DATE on one line, split by em/en dash or hyphen with space.
	datelineRx = regexp.MustCompile(`^([A-Z][A-Za-z.,'\s]{1,60}?)\s*[\x{2014}\x{2013}]\s*(.{4,40})$|^([A-Z][A-Za-z.,'\s]{1,60}?)\s+-\s+(.{4,40})$`)

	// A bare date line, used by the split multi-line dateline form.
	bareDateRx = regexp.MustCompile(`^(?:(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}|\d{4}[-\x{2010}-\x{2014}]\d{2}[-\x{2010}-\x{2014}]\d{2}|\d{1,2}/\d{1,2}/\d{4})\.?$`)

	// A bare location line: "RICHMOND, VA" or "Richmond, Virginia".
	bareLocationRx = regexp.MustCompile(`^(?:[A-Z][A-Z.\s]{1,30},\s*[A-Z]{2}|[A-Z][a-z]+(?:\s[A-Z][a-z]+)*,\s*[A-Z][a-zA-Z]+)$`)

	// Name[, Title]: "quote preview" subhead form.
	subheadSpeakerRx = regexp.MustCompile(`^([A-Z][\w.'\x{2019}-]+(?:\s+[A-Z][\w.'\x{2019}-]+){0,3})(?:,\s*([^:]+?))?\s*:\s*["\x{201C}](.+?)["\x{201D}]?$`)

	headerLineRx = regexp.MustCompile(`(?i)^FOR IMMEDIATE RELEASE\b`)

	phoneRx = regexp.MustCompile(`(?:\(\d{3}\)\s*|\d{3}[-.\s])\d{3}[-.\s]\d{4}`)
	emailRx = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.]+`)
)

// Segment splits text into structural sections.
func (s *Segmenter) Segment(text string) *Document {
	doc := &Document{}

	lines := splitLines(text)
	idx := 0

	// Skip release headers and leading blanks.
	for idx < len(lines) && (lines[idx].text == "" || headerLineRx.MatchString(lines[idx].text) || isContactLead(lines[idx].text)) {
		idx++
	}
	if idx >= len(lines) {
		return doc
	}

	// First non-empty line is the headline candidate unless a dateline
	// pattern is detected first.
	if loc, date, format := matchDateline(lines, idx); format != "" {
		doc.Dateline = model.Dateline{Location: loc, Date: date, Format: format}
		if format == "split" {
			idx += 2
		} else {
			idx++
		}
	} else {
		doc.Headline = lines[idx].text
		idx++
	}

	idx = skipBlank(lines, idx)

	// Optional subhead between headline and dateline.
	if doc.Headline != "" && idx < len(lines) {
		if sp := matchSubheadSpeaker(lines[idx].text); sp != nil {
			doc.Subhead = lines[idx].text
			doc.SubheadSpeaker = sp
			idx++
		} else if doc.Dateline.IsZero() && !looksLikeDateline(lines, idx) && isSubheadCandidate(lines, idx) {
			doc.Subhead = lines[idx].text
			idx++
		}
	}

	idx = skipBlank(lines, idx)

	// Dateline after headline/subhead.
	if doc.Dateline.IsZero() && idx < len(lines) {
		if loc, date, format := matchDateline(lines, idx); format != "" {
			doc.Dateline = model.Dateline{Location: loc, Date: date, Format: format}
			if format == "split" {
				idx += 2
			} else {
				idx++
			}
		}
	}

	// Inline dateline: "RICHMOND, VA — Today the governor..." where the
	// paragraph continues after the dash.
	paragraphs, offsets := collectParagraphs(lines, idx)
	if doc.Dateline.IsZero() && len(paragraphs) > 0 {
		if loc, date, rest := stripInlineDateline(paragraphs[0]); loc != "" {
			doc.Dateline = model.Dateline{Location: loc, Date: date, Format: "single-line"}
			paragraphs[0] = rest
		}
	}

	// Trailing contact/boilerplate paragraphs are excluded from body.
	var contact []string
	end := len(paragraphs)
	for end > 0 && isBoilerplate(paragraphs[end-1]) {
		contact = append([]string{paragraphs[end-1]}, contact...)
		end--
	}
	paragraphs = paragraphs[:end]

	if len(paragraphs) > 0 {
		doc.Lead = paragraphs[0]
		doc.Body = paragraphs[1:]
		doc.BodyStart = offsets[0]
	}
	doc.Contact = strings.Join(contact, "\n")

	return doc
}

type line struct {
	text   string
	offset int
}

func splitLines(text string) []line {
	var lines []line
	offset := 0
	for _, raw := range strings.Split(text, "\n") {
		lines = append(lines, line{text: strings.TrimSpace(raw), offset: offset})
		offset += len(raw) + 1
	}
	return lines
}

func skipBlank(lines []line, idx int) int {
	for idx < len(lines) && lines[idx].text == "" {
		idx++
	}
	return idx
}

// matchDateline recognizes the two dateline shapes at lines[idx]:
// single-line "LOCATION — DATE" and the split form where a bare date and a
// bare location sit on separate nearby lines.
func matchDateline(lines []line, idx int) (location, date, format string) {
	if idx >= len(lines) {
		return "", "", ""
	}
	text := lines[idx].text

	if m := datelineRx.FindStringSubmatch(text); m != nil {
		loc, dt := m[1], m[2]
		if loc == "" {
			loc, dt = m[3], m[4]
		}
		if looksLikeDate(dt) {
			return strings.TrimSpace(loc), strings.TrimSpace(dt), "single-line"
		}
		return "", "", ""
	}

	// Split form: date line then location line (or the reverse) within the
	// next non-empty line.
	next := skipBlank(lines, idx+1)
	if next < len(lines) && next-idx <= 2 {
		if bareDateRx.MatchString(text) && bareLocationRx.MatchString(lines[next].text) {
			return lines[next].text, strings.TrimSuffix(text, "."), "split"
		}
		if bareLocationRx.MatchString(text) && bareDateRx.MatchString(lines[next].text) {
			return text, strings.TrimSuffix(lines[next].text, "."), "split"
		}
	}
	return "", "", ""
}

func looksLikeDateline(lines []line, idx int) bool {
	_, _, format := matchDateline(lines, idx)
	return format != ""
}

var dateTokenRx = regexp.MustCompile(`(?i)\b(?:january|february|march|april|may|june|july|august|september|october|november|december|\d{4})\b`)

func looksLikeDate(s string) bool {
	return dateTokenRx.MatchString(s)
}

// stripInlineDateline handles "RICHMOND, VA — rest of lead paragraph".
var (
	inlineDatelineRx = regexp.MustCompile(`^([A-Z][A-Z.\s]{1,30},\s*[A-Za-z.\s]{2,20}?)\s*[\x{2014}\x{2013}-]\s+(.+)$`)
	inlineDateRx     = regexp.MustCompile(`^((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})\s*[\x{2014}\x{2013}-]\s+(.+)$`)
)

func stripInlineDateline(paragraph string) (location, date, rest string) {
	m := inlineDatelineRx.FindStringSubmatch(paragraph)
	if m == nil {
		return "", "", paragraph
	}
	location = strings.TrimSpace(m[1])
	rest = m[2]

	// The date may lead the remainder: "RICHMOND, VA — June 12, 2025 — ...".
	if dm := inlineDateRx.FindStringSubmatch(rest); dm != nil {
		date = dm[1]
		rest = dm[2]
	}
	return location, date, rest
}

func matchSubheadSpeaker(text string) *SubheadSpeaker {
	m := subheadSpeakerRx.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	return &SubheadSpeaker{
		Name:    strings.TrimSpace(m[1]),
		Title:   strings.TrimSpace(m[2]),
		Preview: strings.TrimSpace(m[3]),
	}
}

// isSubheadCandidate limits plain subheads to a single shortish line that is
// followed by more content, so the lead paragraph is not swallowed.
func isSubheadCandidate(lines []line, idx int) bool {
	text := lines[idx].text
	if len(text) == 0 || len(text) > 160 {
		return false
	}
	if strings.HasSuffix(text, ".") {
		return false
	}
	next := skipBlank(lines, idx+1)
	return next < len(lines) && lines[next].text != ""
}

func collectParagraphs(lines []line, idx int) (paragraphs []string, offsets []int) {
	var current []string
	start := -1
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			offsets = append(offsets, start)
			current = nil
			start = -1
		}
	}
	for ; idx < len(lines); idx++ {
		if lines[idx].text == "" {
			flush()
			continue
		}
		if start < 0 {
			start = lines[idx].offset
		}
		current = append(current, lines[idx].text)
	}
	flush()
	return paragraphs, offsets
}

var boilerplateRx = regexp.MustCompile(`(?i)^(?:###|contact:|media contact|press contact|about |paid for by|authorized by|for more information)`)

// isBoilerplate recognizes trailing contact and signature blocks.
func isBoilerplate(paragraph string) bool {
	if boilerplateRx.MatchString(paragraph) {
		return true
	}
	if strings.Contains(strings.ToLower(paragraph), "paid for by") {
		return true
	}
	// Short blocks dominated by phone numbers or emails.
	if len(paragraph) < 240 && (phoneRx.MatchString(paragraph) || emailRx.MatchString(paragraph)) {
		return true
	}
	return false
}

var contactLeadRx = regexp.MustCompile(`(?i)^contact:`)

func isContactLead(text string) bool {
	return contactLeadRx.MatchString(text) && len(text) < 120
}
