// Package classify assigns a release type, subtypes and issue tags by
// keyword matching over the headline and lead paragraph.
package classify

import (
	"regexp"

	"github.com/presslens/presslens/internal/model"
)

// Classifier labels a parsed release.
type Classifier struct {
	types  []typeRule
	issues []issueRule
}

type typeRule struct {
	name     string
	rx       *regexp.Regexp
	headline float64 // confidence when matched in the headline
	body     float64 // confidence when matched only in the lead
}

type issueRule struct {
	name string
	rx   *regexp.Regexp
}

// NewClassifier builds the keyword rule tables.
func NewClassifier() *Classifier {
	return &Classifier{
		types: []typeRule{
			{"endorsement", regexp.MustCompile(`(?i)\bendorse[sd]?\b|\bendorsement\b`), 0.9, 0.6},
			{"statement", regexp.MustCompile(`(?i)\bstatement\b|\bresponds? to\b|\breacts? to\b`), 0.85, 0.6},
			{"event", regexp.MustCompile(`(?i)\brally\b|\btown hall\b|\bevent\b|\bto visit\b|\bto host\b|\bkicks? off\b`), 0.85, 0.55},
			{"fundraising", regexp.MustCompile(`(?i)\braise[sd]?\b.{0,30}\$|\bfundrais|\bdonat|\bhaul\b`), 0.8, 0.55},
			{"policy", regexp.MustCompile(`(?i)\bplan\b|\bproposal\b|\bunveil|\bintroduce[sd]?\b.{0,30}\b(?:bill|act|legislation)\b|\bpolicy\b`), 0.75, 0.5},
			{"contrast", regexp.MustCompile(`(?i)\battacks?\b|\bslams?\b|\bcriticiz|\bfail(?:ed|ure|ing)\b|\brecord of\b`), 0.7, 0.5},
		},
		issues: []issueRule{
			{"economy", regexp.MustCompile(`(?i)\bjobs?\b|\beconomy\b|\binflation\b|\bwages?\b|\btaxes\b|\bcost of living\b|\bdeficit\b`)},
			{"healthcare", regexp.MustCompile(`(?i)\bhealth\s?care\b|\bmedicaid\b|\bmedicare\b|\bprescription\b|\babortion\b|\breproductive\b`)},
			{"education", regexp.MustCompile(`(?i)\bschools?\b|\beducation\b|\bteachers?\b|\bstudents?\b|\btuition\b`)},
			{"public-safety", regexp.MustCompile(`(?i)\bcrime\b|\bpolice\b|\bpublic safety\b|\bgun\b|\bviolence\b`)},
			{"energy", regexp.MustCompile(`(?i)\benergy\b|\bclimate\b|\bclean power\b|\bemissions?\b|\butility\b`)},
			{"housing", regexp.MustCompile(`(?i)\bhousing\b|\brent\b|\bhomeowner|\baffordab.{0,15}\bhome\b`)},
		},
	}
}

// Classify returns the primary release type, any secondary subtypes, and
// issue tags. An unmatched release is "general" with low confidence.
func (c *Classifier) Classify(headline, lead string) (model.ReleaseType, []model.Subtype, []model.IssueTag) {
	primary := model.ReleaseType{Type: "general", Confidence: 0.3}
	var subtypes []model.Subtype

	for _, rule := range c.types {
		var conf float64
		switch {
		case rule.rx.MatchString(headline):
			conf = rule.headline
		case rule.rx.MatchString(lead):
			conf = rule.body
		default:
			continue
		}
		if conf > primary.Confidence {
			if primary.Type != "general" {
				subtypes = append(subtypes, model.Subtype{Subtype: primary.Type, Confidence: primary.Confidence})
			}
			primary = model.ReleaseType{Type: rule.name, Confidence: conf}
		} else {
			subtypes = append(subtypes, model.Subtype{Subtype: rule.name, Confidence: conf})
		}
	}

	text := headline + " " + lead
	var issues []model.IssueTag
	for _, rule := range c.issues {
		if rule.rx.MatchString(text) {
			conf := 0.6
			if rule.rx.MatchString(headline) {
				conf = 0.8
			}
			issues = append(issues, model.IssueTag{Issue: rule.name, Confidence: conf})
		}
	}

	return primary, subtypes, issues
}
