package ground

import (
	"regexp"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

var supportNumberRx = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

var stopwords = map[string]bool{
	"the": true, "and": true, "that": true, "this": true, "with": true,
	"from": true, "have": true, "has": true, "had": true, "will": true,
	"are": true, "was": true, "were": true, "been": true, "they": true,
	"their": true, "our": true, "your": true, "for": true, "than": true,
	"what": true, "when": true, "into": true, "over": true, "more": true,
	"said": true, "says": true, "would": true, "could": true, "about": true,
}

// SupportsClaim computes term overlap between the claim's salient terms
// (numbers and key nouns) and fetched content. It reports how much of the
// claim the content covers, never whether the claim is true.
func (g *Grounder) SupportsClaim(claim model.FactualClaim, content string) model.SupportCheck {
	terms := salientTerms(claim)
	if len(terms) == 0 {
		return model.SupportCheck{}
	}

	lower := strings.ToLower(content)
	var matched []string
	numericMatched := false
	hasNumeric := len(claim.NumericClaims) > 0

	for _, term := range terms {
		if strings.Contains(lower, strings.ToLower(term)) {
			matched = append(matched, term)
			if supportNumberRx.MatchString(term) {
				numericMatched = true
			}
		}
	}

	ratio := float64(len(matched)) / float64(len(terms))
	supported := ratio >= g.cfg.SupportFloor
	if hasNumeric && !numericMatched {
		// A numeric claim whose numbers are absent from the source is not
		// supported no matter how many nouns overlap.
		supported = false
	}

	check := model.SupportCheck{
		Supported:      supported,
		Confidence:     ratio,
		MatchedTerms:   matched,
		TermMatchRatio: ratio,
	}
	if len(matched) > 0 {
		check.Excerpt = excerptAround(content, matched[0])
	}
	return check
}

// salientTerms picks the comparison-worthy tokens of a claim: normalized
// numbers first, then content words longer than three letters.
func salientTerms(claim model.FactualClaim) []string {
	var terms []string
	seen := make(map[string]bool)

	for _, nc := range claim.NumericClaims {
		num := supportNumberRx.FindString(strings.ReplaceAll(nc.Text, ",", ""))
		if num != "" && !seen[num] {
			seen[num] = true
			terms = append(terms, num)
		}
	}

	for _, word := range strings.Fields(claim.Statement) {
		word = strings.ToLower(strings.Trim(word, `.,;:!?"'“”()`))
		if len(word) <= 3 || stopwords[word] || seen[word] {
			continue
		}
		if !hasAlpha(word) {
			continue
		}
		seen[word] = true
		terms = append(terms, word)
	}

	return terms
}

func hasAlpha(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return true
		}
	}
	return false
}

// excerptAround returns a window of content centered on the first match
// of term.
func excerptAround(content, term string) string {
	idx := strings.Index(strings.ToLower(content), strings.ToLower(term))
	if idx < 0 {
		return ""
	}
	start := idx - 120
	if start < 0 {
		start = 0
	}
	end := idx + len(term) + 120
	if end > len(content) {
		end = len(content)
	}
	excerpt := strings.TrimSpace(content[start:end])
	excerpt = strings.Join(strings.Fields(excerpt), " ")
	return excerpt
}
