package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// DeniabilityDetector scores sentences against a weighted bank of
// plausible-deniability patterns. Every matched pattern contributes its
// fixed weight; claiminess and rhetorical-question boosts stack on top and
// the aggregate clips at the configured maximum.
type DeniabilityDetector struct {
	cfg      model.DeniabilityConfig
	patterns []compiledPattern
	claimyRx *regexp.Regexp
	rhetRx   *regexp.Regexp
}

type compiledPattern struct {
	model.DeniabilityPattern
	rx *regexp.Regexp
}

// NewDeniabilityDetector compiles the pattern bank. Patterns that fail to
// compile are skipped rather than aborting construction.
func NewDeniabilityDetector(cfg model.DeniabilityConfig) *DeniabilityDetector {
	d := &DeniabilityDetector{cfg: cfg}

	for _, p := range cfg.Patterns {
		rx, err := regexp.Compile(`(?i)` + p.Pattern)
		if err != nil {
			continue
		}
		d.patterns = append(d.patterns, compiledPattern{DeniabilityPattern: p, rx: rx})
	}

	if len(cfg.ClaimyWords) > 0 {
		d.claimyRx = regexp.MustCompile(`(?i)` + strings.Join(quoteAll(cfg.ClaimyWords), "|"))
	}
	if len(cfg.RhetoricalStems) > 0 {
		d.rhetRx = regexp.MustCompile(`(?i)^(?:` + strings.Join(quoteAll(cfg.RhetoricalStems), "|") + `)\b`)
	}

	return d
}

// deniabilityResult is the scored outcome for one sentence.
type deniabilityResult struct {
	score   float64
	labels  []string
	matches []model.PatternMatch
	reason  string
}

// Score evaluates one sentence. A sentence with no pattern matches scores
// zero regardless of boosts; boosts only reinforce matched patterns.
func (d *DeniabilityDetector) Score(sentence string) deniabilityResult {
	var result deniabilityResult
	labelSet := make(map[string]bool)

	for _, p := range d.patterns {
		if !p.rx.MatchString(sentence) {
			continue
		}
		result.matches = append(result.matches, model.PatternMatch{ID: p.ID, Label: p.Label})
		result.score += p.Weight
		labelSet[p.Label] = true
	}

	if len(result.matches) == 0 {
		return deniabilityResult{}
	}

	if d.claimyRx != nil && d.claimyRx.MatchString(sentence) {
		result.score += d.cfg.ClaiminessBoost
	}
	if strings.HasSuffix(strings.TrimSpace(sentence), "?") && d.rhetRx != nil && d.rhetRx.MatchString(strings.TrimSpace(sentence)) {
		result.score += d.cfg.RhetoricalQuestionBoost
		labelSet[model.LabelRhetoricalQuestion] = true
	}

	if result.score > d.cfg.MaxScore {
		result.score = d.cfg.MaxScore
	}

	for label := range labelSet {
		result.labels = append(result.labels, label)
	}
	sort.Strings(result.labels)

	result.reason = fmt.Sprintf("%d deniability pattern(s) matched: %s",
		len(result.matches), strings.Join(result.labels, ", "))

	return result
}

// Flagged reports whether the score clears the configured threshold.
func (d *DeniabilityDetector) Flagged(result deniabilityResult) bool {
	return len(result.matches) > 0 && result.score >= d.cfg.Threshold
}

func quoteAll(words []string) []string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return quoted
}
