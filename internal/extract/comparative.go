package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

var (
	comparativeRx = regexp.MustCompile(`(?i)\b(?:greater|more|less|fewer|higher|lower|bigger|smaller|better|worse|double|triple|twice|half)\b|\bthan\b|\bcompared (?:to|with)\b|\bas much as\b`)

	ratioRx = regexp.MustCompile(`(?i)\b(?:double|triple|twice|half|(\d+(?:\.\d+)?)\s*(?:times|x))\b`)

	greaterRx = regexp.MustCompile(`(?i)\b(?:greater|more|higher|bigger|better|increased?)\b`)
	lessRx    = regexp.MustCompile(`(?i)\b(?:less|fewer|lower|smaller|worse|decreased?|declined?)\b`)

	timeRefRx = regexp.MustCompile(`(?i)\b(?:(?:a|one|two|three|four|five|six|seven|eight|nine|ten|\d+)\s+(?:years?|months?|quarters?|decades?)\s+ago|in\s+(?:19|20)\d\d|last\s+(?:year|month|quarter|decade)|since\s+(?:19|20)\d\d)\b`)

	trendRx = regexp.MustCompile(`(?i)\bevery\s+(?:year|quarter|month|day)\b|\bkeeps?\s+(?:getting|growing|rising|falling|climbing)\b|\b(?:\d+|two|three|four|five|ten)\s+consecutive\s+(?:years?|months?|quarters?)\b|\byear\s+(?:over|after)\s+year\b|\bcontinues?\s+to\s+(?:grow|rise|fall|climb|shrink)\b`)

	metricWords = []string{
		"deficit", "debt", "unemployment", "inflation", "crime", "taxes",
		"spending", "wages", "jobs", "growth", "revenue", "costs", "prices",
		"enrollment", "turnout", "funding", "poverty", "graduation",
	}
)

// detectComparative classifies a sentence that compares a metric against
// another value, a past point in time, or an ongoing trend. The returned
// verification steps enumerate what must be independently looked up; they
// are a checklist, not an automated verification.
func detectComparative(sentence string) *model.ComparativeClaim {
	if !comparativeRx.MatchString(sentence) && !trendRx.MatchString(sentence) {
		return nil
	}

	claim := &model.ComparativeClaim{
		Metrics: extractMetrics(sentence),
	}

	isTrend := trendRx.MatchString(sentence)
	timeRef := timeRefRx.FindString(sentence)
	isRatio := ratioRx.MatchString(sentence)

	switch {
	case isTrend:
		claim.ComparisonType = model.ComparisonOngoingTrend
		claim.IsTrend = true
		claim.IsTemporal = true
		claim.TimeReference = timeRef
	case timeRef != "" && isRatio:
		claim.ComparisonType = model.ComparisonTemporalRatio
		claim.IsTemporal = true
		claim.TimeReference = timeRef
	case timeRef != "":
		claim.ComparisonType = model.ComparisonTemporalChange
		claim.IsTemporal = true
		claim.TimeReference = timeRef
	case isRatio:
		claim.ComparisonType = model.ComparisonMultiplicative
	case lessRx.MatchString(sentence) && !greaterRx.MatchString(sentence):
		claim.ComparisonType = model.ComparisonLessThan
	default:
		claim.ComparisonType = model.ComparisonGreaterThan
	}

	claim.VerificationSteps = verificationSteps(claim)
	return claim
}

// verificationSteps builds the lookup checklist for a comparative claim.
func verificationSteps(claim *model.ComparativeClaim) []model.VerificationStep {
	metric := "the stated metric"
	if len(claim.Metrics) > 0 {
		metric = strings.Join(claim.Metrics, ", ")
	}

	var steps []model.VerificationStep
	steps = append(steps, model.VerificationStep{
		Description: fmt.Sprintf("look up the current value of %s from an independent source", metric),
	})

	switch {
	case claim.IsTrend:
		steps = append(steps,
			model.VerificationStep{Description: fmt.Sprintf("look up %s for each period in the claimed range", metric)},
			model.VerificationStep{Description: "confirm the direction of change holds across every period, not just the endpoints"},
		)
	case claim.IsTemporal:
		ref := claim.TimeReference
		if ref == "" {
			ref = "the referenced past point"
		}
		steps = append(steps,
			model.VerificationStep{Description: fmt.Sprintf("look up the historical value of %s at %s", metric, ref)},
			model.VerificationStep{Description: "compute the ratio or delta between the current and historical values and compare it to the claim"},
		)
	default:
		steps = append(steps,
			model.VerificationStep{Description: "look up the comparison value from an independent source and compare"},
		)
	}

	return steps
}

func extractMetrics(sentence string) []string {
	lower := strings.ToLower(sentence)
	var metrics []string
	for _, w := range metricWords {
		if strings.Contains(lower, w) {
			metrics = append(metrics, w)
		}
	}
	return metrics
}
