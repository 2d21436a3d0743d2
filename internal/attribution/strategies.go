package attribution

import (
	"regexp"
	"strings"
)

// speaker is a resolved attribution.
type speaker struct {
	name        string
	title       string
	attribution string
}

// quoteContext is what a strategy sees for one quote: the configured
// window of text before and after the span, plus the speaker tracked from
// earlier quotes for pronoun resolution.
type quoteContext struct {
	before string
	after  string
	prev   speaker
}

// strategy is one (predicate, resolver) pair in the ordered attribution
// chain. A nil return means "not my pattern, try the next one".
type strategy struct {
	name    string
	resolve func(qc quoteContext) *speaker
}

// attributionVerbs are the verbs that bind a name to a quote.
const attributionVerbs = `said|stated|announced|noted|explained|added|continued|emphasized`

var (
	// `..." said Connor Joseph, Communications Director for the campaign.`
	// Commas are allowed inside the capture so long titles survive; the
	// capture stops at sentence-ending punctuation.
	forwardRx = regexp.MustCompile(`^[,.]?\s*[\x{2014}\x{2013}-]?\s*(?:` + attributionVerbs + `)\s+([A-Z][^.!?;\n]*)`)

	// `Abigail Spanberger said, "..."` — a capitalized, hyphen and
	// apostrophe aware name immediately followed by an attribution verb.
	reversedRx = regexp.MustCompile(`([A-Z][\w'\x{2019}.-]+(?:\s+[A-Z][\w'\x{2019}.-]+){0,3})(?:,\s*([^,\n]{2,60}?),)?\s+(?:` + attributionVerbs + `)[,:]?\s*$`)

	// `According to Dr. Lee, "..."`
	accordingToRx = regexp.MustCompile(`(?i)according to\s+([A-Z][\w\s.'\x{2019}-]{1,40}?)[,:]\s*$`)

	// `she continued, "..."` / `"..." he added.`
	pronounBeforeRx = regexp.MustCompile(`(?i)\b(?:she|he|they)\s+(?:` + attributionVerbs + `|remarked)[,:]?\s*$`)
	pronounAfterRx  = regexp.MustCompile(`(?i)^[,.]?\s*(?:she|he|they)\s+(?:` + attributionVerbs + `|remarked)`)

	// Leading capitalized words of a captured phrase form the name; the
	// rest after the first comma is the title.
	namePartRx = regexp.MustCompile(`^([A-Z][\w'\x{2019}.-]*(?:\s+[A-Z][\w'\x{2019}.-]*){0,3})`)
)

// defaultStrategies returns the ordered chain: forward, reversed,
// according-to, pronoun. Order matters; the first match wins.
func defaultStrategies() []strategy {
	return []strategy{
		{name: "forward", resolve: resolveForward},
		{name: "reversed", resolve: resolveReversed},
		{name: "according-to", resolve: resolveAccordingTo},
		{name: "pronoun", resolve: resolvePronoun},
	}
}

func resolveForward(qc quoteContext) *speaker {
	m := forwardRx.FindStringSubmatch(qc.after)
	if m == nil {
		return nil
	}
	name, title := splitNameTitle(m[1])
	if name == "" {
		return nil
	}
	return &speaker{name: name, title: title, attribution: strings.TrimSpace(m[0])}
}

func resolveReversed(qc quoteContext) *speaker {
	m := reversedRx.FindStringSubmatch(tail(qc.before, 160))
	if m == nil {
		return nil
	}
	name := trimSentenceBoundary(strings.TrimSpace(m[1]))
	if name == "" || isPronounOrStopword(name) {
		return nil
	}
	return &speaker{name: name, title: strings.TrimSpace(m[2]), attribution: strings.TrimSpace(m[0])}
}

func resolveAccordingTo(qc quoteContext) *speaker {
	m := accordingToRx.FindStringSubmatch(tail(qc.before, 120))
	if m == nil {
		return nil
	}
	name, title := splitNameTitle(m[1])
	if name == "" {
		return nil
	}
	return &speaker{name: name, title: title, attribution: strings.TrimSpace(m[0])}
}

func resolvePronoun(qc quoteContext) *speaker {
	if qc.prev.name == "" {
		return nil
	}
	if pronounBeforeRx.MatchString(tail(qc.before, 80)) || pronounAfterRx.MatchString(qc.after) {
		return &speaker{name: qc.prev.name, title: qc.prev.title, attribution: "pronoun reference"}
	}
	return nil
}

// splitNameTitle separates "Connor Joseph, Communications Director for
// Hashmi for Lieutenant Governor" into name and title.
func splitNameTitle(phrase string) (name, title string) {
	phrase = strings.TrimSpace(strings.TrimRight(phrase, ",. "))
	if idx := strings.Index(phrase, ","); idx > 0 {
		name = strings.TrimSpace(phrase[:idx])
		title = strings.TrimSpace(phrase[idx+1:])
	} else {
		name = phrase
	}
	m := namePartRx.FindStringSubmatch(name)
	if m == nil {
		return "", ""
	}
	name = strings.TrimSpace(m[1])
	if isPronounOrStopword(name) {
		return "", ""
	}
	return name, title
}

var stopNames = map[string]bool{
	"The": true, "A": true, "An": true, "This": true, "That": true,
	"He": true, "She": true, "They": true, "It": true, "We": true,
	"Today": true, "Yesterday": true,
}

func isPronounOrStopword(name string) bool {
	first := name
	if idx := strings.IndexByte(name, ' '); idx > 0 {
		first = name[:idx]
	}
	return stopNames[first] && !strings.Contains(name, " ")
}

var nameAbbrevs = map[string]bool{
	"Dr.": true, "Mr.": true, "Mrs.": true, "Ms.": true,
	"Sen.": true, "Rep.": true, "Gov.": true, "Lt.": true,
}

// trimSentenceBoundary keeps only the part of a captured name after the
// last sentence break, so "Jane Smith. She" resolves on "She" and falls
// through to pronoun resolution. Initials and honorifics like "Dr." are
// not breaks.
func trimSentenceBoundary(name string) string {
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return name
	}
	start := 0
	for i, f := range fields[:len(fields)-1] {
		if strings.HasSuffix(f, ".") && len(f) > 2 && !nameAbbrevs[f] {
			start = i + 1
		}
	}
	return strings.Join(fields[start:], " ")
}
