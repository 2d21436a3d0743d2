package extract

import (
	"regexp"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// ClaimExtractor decomposes body text into candidate factual statements
// and classifies each one. It never asserts truth: unverifiable claims are
// tagged and kept for human review, not dropped or marked true/false.
type ClaimExtractor struct {
	cfg         model.ParserConfig
	deniability *DeniabilityDetector
}

// NewClaimExtractor creates an extractor with the given configuration.
func NewClaimExtractor(cfg model.ParserConfig) *ClaimExtractor {
	return &ClaimExtractor{
		cfg:         cfg,
		deniability: NewDeniabilityDetector(cfg.Deniability),
	}
}

var (
	privateDataRx = regexp.MustCompile(`(?i)\bour (?:internal|own) (?:polling|data|numbers|research|modeling)\b|\binternal (?:polling|data|numbers) (?:shows?|suggests?|indicates?)\b|\bproprietary (?:data|research|analysis)\b`)

	attributionSourceRx = regexp.MustCompile(`(?i)according to ([^,.;]{2,60})`)
	attributionVerbRx   = regexp.MustCompile(`(?i)\b(?:said|reported|estimated|found|projected|announced)\b`)

	// Non-numeric sentences still become claims when they assert something
	// checkable in these forms.
	claimIndicatorRx = regexp.MustCompile(`(?i)\b(?:is the (?:first|only|largest|smallest)|has never|has always|was the|will be the|ranked?|rated)\b`)
)

// Extract turns body paragraphs into a list of classified factual claims.
func (e *ClaimExtractor) Extract(paragraphs []string) []model.FactualClaim {
	var claims []model.FactualClaim

	for _, paragraph := range paragraphs {
		for _, sentence := range splitSentences(paragraph) {
			if isDegenerate(sentence, e.cfg.MinSentenceWords) {
				continue
			}
			if claim := e.classify(sentence); claim != nil {
				claims = append(claims, *claim)
			}
		}
	}

	return claims
}

// classify runs the layered classifiers over one sentence and returns nil
// when the sentence carries no claim signal at all.
func (e *ClaimExtractor) classify(sentence string) *model.FactualClaim {
	claim := model.FactualClaim{
		Statement:  sentence,
		Verifiable: true,
	}

	claim.NumericClaims = extractNumericClaims(sentence)

	if m := attributionSourceRx.FindStringSubmatch(sentence); m != nil {
		claim.HasAttribution = true
		claim.AttributionSource = strings.TrimSpace(m[1])
	}

	hearsay := detectHearsay(sentence)
	denial := e.deniability.Score(sentence)
	comparative := detectComparative(sentence)
	private := privateDataRx.MatchString(sentence)

	hasSignal := len(claim.NumericClaims) > 0 ||
		claim.HasAttribution ||
		hearsay != nil ||
		e.deniability.Flagged(denial) ||
		comparative != nil ||
		private ||
		claimIndicatorRx.MatchString(sentence)

	if !hasSignal {
		return nil
	}

	if len(claim.NumericClaims) > 0 {
		claim.Types = append(claim.Types, model.TagStatistical)
	}

	if private {
		claim.Types = append(claim.Types, model.TagPrivateData)
		claim.Verifiable = false
		claim.ReasonUnverifiable = "references internal or proprietary data that cannot be independently checked"
	}

	if hearsay != nil {
		claim.Types = append(claim.Types, model.TagHearsay)
		claim.HearsayType = hearsay.hearsayType
		claim.OriginalSpeaker = hearsay.originalSpeaker
		claim.VerificationNotes = hearsayVerificationNotes(hearsay.originalSpeaker)
		if !claim.HasAttribution {
			claim.HasAttribution = true
			claim.AttributionSource = hearsay.originalSpeaker
		}
	}

	if e.deniability.Flagged(denial) {
		claim.Types = append(claim.Types, model.TagDeniability)
		claim.DeniabilityScore = denial.score
		claim.DeniabilityReason = denial.reason
		claim.DeniabilityLabels = denial.labels
		claim.MatchedPatterns = denial.matches
	}

	if comparative != nil {
		claim.Types = append(claim.Types, model.TagComparative)
		claim.Comparative = comparative
	}

	if len(claim.Types) == 0 ||
		(len(claim.Types) == 1 && claim.Types[0] == model.TagStatistical) {
		claim.Types = append(claim.Types, model.TagDirect)
	}

	claim.Confidence = e.confidence(&claim)
	return &claim
}

// confidence is a deterministic heuristic: concrete numbers and named
// attribution raise it, deniability phrasing and hearsay lower it.
func (e *ClaimExtractor) confidence(claim *model.FactualClaim) float64 {
	score := 0.55
	if len(claim.NumericClaims) > 0 {
		score += 0.20
	}
	if claim.HasAttribution {
		score += 0.10
	}
	if claim.HasTag(model.TagHearsay) {
		score -= 0.15
	}
	if claim.HasTag(model.TagDeniability) {
		score -= 0.20
	}
	if !claim.Verifiable {
		score -= 0.10
	}
	if score < 0.05 {
		score = 0.05
	}
	if score > 0.95 {
		score = 0.95
	}
	return score
}
