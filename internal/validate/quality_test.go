package validate

import (
	"strings"
	"testing"

	"github.com/presslens/presslens/internal/model"
)

func newQuality() *QualityValidator {
	return NewQualityValidator(model.DefaultConfig().Quality)
}

func attributedQuote(speaker string) model.Quote {
	return model.Quote{QuoteText: "We will get this done.", SpeakerName: speaker}
}

func unknownQuote() model.Quote {
	return model.Quote{QuoteText: "We will get this done.", SpeakerName: model.UnknownSpeaker}
}

func fullRelease() *model.ParsedRelease {
	return &model.ParsedRelease{
		Headline:      "Smith Campaign Announces Comprehensive Jobs Plan",
		Dateline:      model.Dateline{Date: "March 15, 2024", Location: "SPRINGFIELD, IL"},
		LeadParagraph: strings.Repeat("The campaign announced a plan today. ", 3),
		BodyParagraphs: []string{
			strings.Repeat("The plan includes detailed provisions for workforce development. ", 3),
		},
		Quotes: []model.Quote{attributedQuote("Jane Smith"), attributedQuote("John Doe")},
	}
}

const originalWithHeader = "FOR IMMEDIATE RELEASE\n\nthe rest of the document"

func TestAssess_CompleteRelease(t *testing.T) {
	v := newQuality()

	result := v.Assess(fullRelease(), originalWithHeader)

	if result.QualityScore != 100 {
		t.Errorf("expected score 100, got %d (errors: %v, warnings: %v)",
			result.QualityScore, result.Errors, result.Warnings)
	}
	if result.Status != model.StatusExcellent {
		t.Errorf("expected excellent, got %s", result.Status)
	}
	if result.ShouldReject {
		t.Error("complete release must not be rejected")
	}
}

func TestAssess_Deductions(t *testing.T) {
	v := newQuality()

	tests := []struct {
		name      string
		mutate    func(*model.ParsedRelease)
		original  string
		wantScore int
	}{
		{
			"missing immediate release header",
			func(r *model.ParsedRelease) {},
			"a document without the header",
			70,
		},
		{
			"no quotes",
			func(r *model.ParsedRelease) { r.Quotes = nil },
			originalWithHeader,
			60,
		},
		{
			"no meaningful headline",
			func(r *model.ParsedRelease) { r.Headline = "Update" },
			originalWithHeader,
			75,
		},
		{
			"missing dateline",
			func(r *model.ParsedRelease) { r.Dateline = model.Dateline{} },
			originalWithHeader,
			85,
		},
		{
			"single quote",
			func(r *model.ParsedRelease) { r.Quotes = r.Quotes[:1] },
			originalWithHeader,
			95,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			release := fullRelease()
			tt.mutate(release)

			result := v.Assess(release, tt.original)
			if result.QualityScore != tt.wantScore {
				t.Errorf("expected score %d, got %d (errors: %v, warnings: %v)",
					tt.wantScore, result.QualityScore, result.Errors, result.Warnings)
			}
		})
	}
}

func TestAssess_UnknownSpeakerTiers(t *testing.T) {
	v := newQuality()

	t.Run("high ratio", func(t *testing.T) {
		release := fullRelease()
		release.Quotes = []model.Quote{unknownQuote(), unknownQuote(), unknownQuote()}

		result := v.Assess(release, originalWithHeader)
		if result.QualityScore != 80 {
			t.Errorf("expected 80 after high-ratio deduction, got %d", result.QualityScore)
		}
	})

	t.Run("moderate ratio", func(t *testing.T) {
		release := fullRelease()
		release.Quotes = []model.Quote{attributedQuote("Jane Smith"), unknownQuote(), unknownQuote()}

		result := v.Assess(release, originalWithHeader)
		if result.QualityScore != 90 {
			t.Errorf("expected 90 after moderate-ratio deduction, got %d", result.QualityScore)
		}
	})

	t.Run("half unknown takes no deduction", func(t *testing.T) {
		release := fullRelease()
		release.Quotes = []model.Quote{attributedQuote("Jane Smith"), unknownQuote()}

		result := v.Assess(release, originalWithHeader)
		if result.QualityScore != 100 {
			t.Errorf("expected 100 at exactly 50%% unknown, got %d", result.QualityScore)
		}
	})
}

func TestAssess_ThinBody(t *testing.T) {
	v := newQuality()

	release := fullRelease()
	release.LeadParagraph = strings.Repeat("a", 150)
	release.BodyParagraphs = nil

	result := v.Assess(release, originalWithHeader)
	if result.QualityScore != 95 {
		t.Errorf("expected 95 after thin-body deduction, got %d", result.QualityScore)
	}
}

func TestAssess_CriticalRejection(t *testing.T) {
	v := newQuality()

	release := &model.ParsedRelease{
		Headline:      "Smith Campaign Announces Comprehensive Jobs Plan",
		Dateline:      model.Dateline{Date: "March 15, 2024", Location: "SPRINGFIELD, IL"},
		LeadParagraph: "Very short.",
	}

	result := v.Assess(release, originalWithHeader)
	if !result.ShouldReject {
		t.Error("no quotes plus near-empty body must be rejected")
	}
}

func TestAssess_ScoreBelowRejectThreshold(t *testing.T) {
	v := newQuality()

	release := &model.ParsedRelease{
		Headline: "x",
		Quotes:   []model.Quote{attributedQuote("Jane Smith"), attributedQuote("John Doe")},
	}

	result := v.Assess(release, "no header here")
	// 100 - 30 (header) - 25 (headline) - 35 (short body) - 15 (dateline) = -5, clamped.
	if result.QualityScore != 0 {
		t.Errorf("expected clamped score 0, got %d", result.QualityScore)
	}
	if !result.ShouldReject {
		t.Error("score below threshold must be rejected")
	}
	if result.Status != model.StatusRejected {
		t.Errorf("expected rejected status, got %s", result.Status)
	}
}

func TestStatusBands(t *testing.T) {
	v := newQuality()

	tests := []struct {
		score int
		want  model.QualityStatus
	}{
		{100, model.StatusExcellent},
		{90, model.StatusExcellent},
		{89, model.StatusGood},
		{75, model.StatusGood},
		{74, model.StatusFair},
		{60, model.StatusFair},
		{59, model.StatusPoor},
		{40, model.StatusPoor},
		{39, model.StatusRejected},
		{0, model.StatusRejected},
	}

	for _, tt := range tests {
		if got := v.status(tt.score); got != tt.want {
			t.Errorf("status(%d): expected %s, got %s", tt.score, tt.want, got)
		}
	}
}
