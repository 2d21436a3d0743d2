package validate

import (
	"fmt"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// QualityValidator scores a parse for structural completeness and flags
// releases that should be rejected. Deductions are fixed point values from
// config; every deduction is reflected in Errors or Warnings so the score
// is explainable from the result alone.
type QualityValidator struct {
	cfg model.QualityConfig
}

// NewQualityValidator creates a quality validator.
func NewQualityValidator(cfg model.QualityConfig) *QualityValidator {
	return &QualityValidator{cfg: cfg}
}

// Assess scores the parsed release against the original text.
func (v *QualityValidator) Assess(release *model.ParsedRelease, original string) model.QualityResult {
	metrics := v.measure(release, original)

	score := 100
	var errors []string
	var warnings []string

	if !metrics.HasForImmediateRelease {
		score -= v.cfg.MissingImmediateRelease
		errors = append(errors, "missing FOR IMMEDIATE RELEASE header")
	}
	if metrics.QuoteCount == 0 {
		score -= v.cfg.NoQuotes
		errors = append(errors, "no quotes found")
	}
	if !metrics.HasHeadline {
		score -= v.cfg.NoHeadline
		errors = append(errors, "no meaningful headline")
	}
	if metrics.BodyLength < v.cfg.BodyCriticalLength {
		score -= v.cfg.ShortBody
		errors = append(errors, fmt.Sprintf("body under %d characters", v.cfg.BodyCriticalLength))
	}
	if !metrics.HasDateline {
		score -= v.cfg.MissingDateline
		warnings = append(warnings, "missing dateline")
	}

	if metrics.QuoteCount > 0 {
		switch {
		case metrics.UnknownSpeakerPercentage > v.cfg.UnknownHighRatio*100:
			score -= v.cfg.UnknownSpeakerHigh
			warnings = append(warnings, fmt.Sprintf("%.0f%% of quotes have unresolved speakers", metrics.UnknownSpeakerPercentage))
		case metrics.UnknownSpeakerPercentage > v.cfg.UnknownModerateRatio*100:
			score -= v.cfg.UnknownSpeakerModerate
			warnings = append(warnings, fmt.Sprintf("%.0f%% of quotes have unresolved speakers", metrics.UnknownSpeakerPercentage))
		}
	}
	if metrics.QuoteCount == 1 {
		score -= v.cfg.SingleQuote
		warnings = append(warnings, "only one quote found")
	}
	if metrics.BodyLength >= v.cfg.BodyCriticalLength && metrics.BodyLength < v.cfg.BodyWarnLength {
		score -= v.cfg.ThinBody
		warnings = append(warnings, fmt.Sprintf("body under %d characters", v.cfg.BodyWarnLength))
	}

	if score < 0 {
		score = 0
	}

	// A document with no quotes and a near-empty body is not a press
	// release at all, regardless of what the score works out to.
	critical := metrics.QuoteCount == 0 && metrics.BodyLength < v.cfg.BodyCriticalLength

	return model.QualityResult{
		QualityScore: score,
		Status:       v.status(score),
		Errors:       errors,
		Warnings:     warnings,
		ShouldReject: score < v.cfg.RejectBelow || critical,
		Metrics:      metrics,
	}
}

func (v *QualityValidator) measure(release *model.ParsedRelease, original string) model.QualityMetrics {
	bodyLen := 0
	for _, p := range release.BodyParagraphs {
		bodyLen += len(p)
	}
	if release.LeadParagraph != "" {
		bodyLen += len(release.LeadParagraph)
	}

	unknown := 0
	for _, q := range release.Quotes {
		if !q.IsAttributed() {
			unknown++
		}
	}
	unknownPct := 0.0
	if len(release.Quotes) > 0 {
		unknownPct = float64(unknown) / float64(len(release.Quotes)) * 100
	}

	return model.QualityMetrics{
		QuoteCount:               len(release.Quotes),
		UnknownSpeakerPercentage: unknownPct,
		BodyLength:               bodyLen,
		HasDateline:              !release.Dateline.IsZero(),
		HasHeadline:              isMeaningfulHeadline(release.Headline),
		HasForImmediateRelease:   strings.Contains(strings.ToUpper(original), "FOR IMMEDIATE RELEASE"),
	}
}

func (v *QualityValidator) status(score int) model.QualityStatus {
	switch {
	case score >= v.cfg.ExcellentFloor:
		return model.StatusExcellent
	case score >= v.cfg.GoodFloor:
		return model.StatusGood
	case score >= v.cfg.FairFloor:
		return model.StatusFair
	case score >= v.cfg.PoorFloor:
		return model.StatusPoor
	default:
		return model.StatusRejected
	}
}

// isMeaningfulHeadline filters out empty or degenerate headline candidates.
func isMeaningfulHeadline(headline string) bool {
	trimmed := strings.TrimSpace(headline)
	if len(trimmed) < 10 {
		return false
	}
	words := strings.Fields(trimmed)
	return len(words) >= 3
}
