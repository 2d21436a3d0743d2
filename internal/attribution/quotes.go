package attribution

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/presslens/presslens/internal/model"
)

// rawQuote is an extracted quoted span before attribution.
type rawQuote struct {
	text string
	span model.Span // byte offsets of the inner text in the original input
}

// extractQuotes locates all text enclosed in straight or curly quotation
// marks. Offsets always locate the quote text verbatim in the input.
func extractQuotes(text string) []rawQuote {
	var quotes []rawQuote

	inQuote := false
	start := 0
	for i, r := range text {
		switch {
		case r == '“': // opening curly
			inQuote = true
			start = i + len(string(r))
		case r == '”': // closing curly
			if inQuote {
				quotes = appendQuote(quotes, text, start, i)
				inQuote = false
			}
		case r == '"':
			if inQuote {
				quotes = appendQuote(quotes, text, start, i)
				inQuote = false
			} else {
				inQuote = true
				start = i + 1
			}
		}
	}

	return quotes
}

func appendQuote(quotes []rawQuote, text string, start, end int) []rawQuote {
	if end <= start {
		return quotes
	}
	inner := text[start:end]
	if !hasLetter(inner) {
		return quotes
	}
	return append(quotes, rawQuote{text: inner, span: model.Span{Start: start, End: end}})
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

var (
	// Verbs that introduce a quoted ranking, title or plan name rather
	// than speech: `lost its CNBC ranking as "America's Top State"`.
	// The verb must sit in the same sentence as the quote; a terminator or
	// line break between them means ordinary narration, not a quoted label.
	narrativeLeadRx = regexp.MustCompile(`(?i)\b(?:announced|lost|won|ranked|rated|named|titled|called|dubbed|labeled|released|unveiled)\b[^"\x{201C}\x{201D}.!?\n]{0,50}$`)

	attributionMarkerRx = regexp.MustCompile(`(?i)\b(?:said|stated|according to|added|noted|explained|remarked|emphasized|continued)\b`)
)

// isNarrative classifies a quoted span as a narrative quoted phrase rather
// than speech. Narrative spans without an explicit attribution marker in
// the surrounding context are not quotes from a speaker.
func isNarrative(before, after string) bool {
	if attributionMarkerRx.MatchString(tail(before, 120)) || attributionMarkerRx.MatchString(head(after, 120)) {
		return false
	}
	return narrativeLeadRx.MatchString(tail(before, 80))
}

// tail returns at most n trailing bytes of s, aligned to a rune boundary.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[len(s)-n:]
	for len(cut) > 0 && !utf8RuneStart(cut[0]) {
		cut = cut[1:]
	}
	return cut
}

// head returns at most n leading bytes of s, aligned to a rune boundary.
func head(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	for len(cut) > 0 && !utf8RuneStart(cut[len(cut)-1]) {
		// Back off a partial trailing rune.
		if r := rune(cut[len(cut)-1]); r < 0x80 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}

func utf8RuneStart(b byte) bool {
	return b < 0x80 || b >= 0xC0
}

// openingMarkLen returns the byte length of the quotation mark ending s,
// so context windows can exclude the mark itself.
func openingMarkLen(s string) int {
	if strings.HasSuffix(s, `"`) {
		return 1
	}
	if strings.HasSuffix(s, "“") {
		return len("“")
	}
	return 0
}

// closingMarkLen returns the byte length of the quotation mark starting s.
func closingMarkLen(s string) int {
	if strings.HasPrefix(s, `"`) {
		return 1
	}
	if strings.HasPrefix(s, "”") {
		return len("”")
	}
	return 0
}

var paragraphBreakRx = regexp.MustCompile(`\n[ \t]*\n`)

// paragraphBreaks counts blank-line breaks in a text gap.
func paragraphBreaks(gap string) int {
	return len(paragraphBreakRx.FindAllStringIndex(gap, -1))
}
