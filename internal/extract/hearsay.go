package extract

import (
	"regexp"
	"strings"
)

// hearsayMatch is a detected reported-speech construction.
type hearsayMatch struct {
	hearsayType     string
	originalSpeaker string
}

// hearsayPatterns capture the original speaker of reported speech. Order
// matters: the most specific constructions come first.
var hearsayPatterns = []struct {
	hearsayType string
	rx          *regexp.Regexp
}{
	{"reported-speech", regexp.MustCompile(`(?i)as you (?:just )?heard ([A-Z][\w.'\x{2019}\s-]{1,40}?) say`)},
	{"secondhand", regexp.MustCompile(`([A-Z][\w.'\x{2019}-]+(?:\s+[A-Z][\w.'\x{2019}-]+){0,3}) told (?:us|me|reporters|the crowd)`)},
	{"secondhand", regexp.MustCompile(`([A-Z][\w.'\x{2019}-]+(?:\s+[A-Z][\w.'\x{2019}-]+){0,3}) mentioned that`)},
	{"reported-speech", regexp.MustCompile(`(?i)according to what ([A-Z][\w.'\x{2019}\s-]{1,40}?) (?:said|told)`)},
}

// detectHearsay reports whether a sentence relays what someone else said.
// Hearsay needs two-step verification: that the statement was made, and
// that the underlying assertion is accurate.
func detectHearsay(sentence string) *hearsayMatch {
	for _, p := range hearsayPatterns {
		if m := p.rx.FindStringSubmatch(sentence); m != nil {
			return &hearsayMatch{
				hearsayType:     p.hearsayType,
				originalSpeaker: strings.TrimSpace(m[1]),
			}
		}
	}
	return nil
}

// hearsayVerificationNotes enumerates both required checks.
func hearsayVerificationNotes(originalSpeaker string) []string {
	return []string{
		"verify that " + originalSpeaker + " actually made this statement",
		"verify that the underlying claim attributed to " + originalSpeaker + " is accurate",
	}
}
