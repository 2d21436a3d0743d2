package extract

import (
	"math"
	"reflect"
	"testing"

	"github.com/presslens/presslens/internal/model"
)

func newDetector() *DeniabilityDetector {
	return NewDeniabilityDetector(model.DefaultDeniabilityConfig())
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScore_HearsayShieldWithClaimyBoost(t *testing.T) {
	d := newDetector()

	result := d.Score("People are telling me the election was rigged.")

	if len(result.matches) != 1 {
		t.Fatalf("expected 1 match, got %d: %v", len(result.matches), result.matches)
	}
	if result.matches[0].ID != "pd-hearsay-people-saying" {
		t.Errorf("unexpected pattern: %s", result.matches[0].ID)
	}
	// 0.40 pattern weight plus the 0.10 claiminess boost for "rigged".
	if !almostEqual(result.score, 0.50) {
		t.Errorf("expected score 0.50, got %.2f", result.score)
	}
	if !reflect.DeepEqual(result.labels, []string{model.LabelHearsayShield}) {
		t.Errorf("unexpected labels: %v", result.labels)
	}
	if !d.Flagged(result) {
		t.Error("score at the threshold must flag the sentence")
	}
}

func TestScore_SinglePatternBelowThreshold(t *testing.T) {
	d := newDetector()

	result := d.Score("Everybody knows the system is broken.")

	if !almostEqual(result.score, 0.35) {
		t.Errorf("expected score 0.35, got %.2f", result.score)
	}
	if d.Flagged(result) {
		t.Error("a single weak pattern must not clear the threshold")
	}
}

func TestScore_RhetoricalQuestionBoost(t *testing.T) {
	d := newDetector()

	result := d.Score("Why won't they investigate the massive corruption?")

	// 0.30 pattern, 0.10 claiminess ("massive"), 0.15 rhetorical question.
	if !almostEqual(result.score, 0.55) {
		t.Errorf("expected score 0.55, got %.2f", result.score)
	}
	if !reflect.DeepEqual(result.labels, []string{model.LabelRhetoricalQuestion}) {
		t.Errorf("unexpected labels: %v", result.labels)
	}
	if !d.Flagged(result) {
		t.Error("boosted rhetorical question must be flagged")
	}
}

func TestScore_StemWithoutQuestionMarkGetsNoBoost(t *testing.T) {
	d := newDetector()

	result := d.Score("Why they did it is widely believed to be obvious.")

	if !almostEqual(result.score, 0.40) {
		t.Errorf("expected bare pattern weight 0.40, got %.2f", result.score)
	}
	for _, label := range result.labels {
		if label == model.LabelRhetoricalQuestion {
			t.Error("non-question sentence must not carry the rhetorical label")
		}
	}
}

func TestScore_NoPatternScoresZeroDespiteClaimyWords(t *testing.T) {
	d := newDetector()

	result := d.Score("Our opponent ran a tremendous and massive campaign operation.")

	if result.score != 0 {
		t.Errorf("boosts must not fire without a pattern match, got %.2f", result.score)
	}
	if len(result.matches) != 0 || len(result.labels) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
	if d.Flagged(result) {
		t.Error("unmatched sentence must not be flagged")
	}
}

func TestScore_ClipsAtMaxScore(t *testing.T) {
	d := newDetector()

	result := d.Score("People are telling me, and it is widely believed, that everybody knows many people say the election was rigged.")

	if len(result.matches) != 4 {
		t.Fatalf("expected 4 matches, got %d: %v", len(result.matches), result.matches)
	}
	if !almostEqual(result.score, 1.0) {
		t.Errorf("expected score clipped at 1.0, got %.2f", result.score)
	}
	want := []string{
		model.LabelAnonymousConsensus,
		model.LabelHearsayShield,
		model.LabelPassiveAuthority,
	}
	if !reflect.DeepEqual(result.labels, want) {
		t.Errorf("expected sorted labels %v, got %v", want, result.labels)
	}
	if result.reason == "" {
		t.Error("expected a populated reason string")
	}
}

func TestScore_PatternTable(t *testing.T) {
	d := newDetector()

	tests := []struct {
		sentence string
		wantID   string
	}{
		{"I'm not saying he broke the law, but the timing is strange.", "pd-jaq-not-saying-but"},
		{"It makes you wonder who benefits from this deal.", "pd-jaq-makes-you-wonder"},
		{"It has been suggested that the count was off.", "pd-passive-been-said"},
		{"Nobody disputes that our plan is working.", "pd-anon-nobody-denies"},
		{"We'll see what happens with the recount.", "pd-future-well-see"},
		{"We are looking into it very strongly.", "pd-future-looking-into"},
	}

	for _, tt := range tests {
		t.Run(tt.wantID, func(t *testing.T) {
			result := d.Score(tt.sentence)
			found := false
			for _, m := range result.matches {
				if m.ID == tt.wantID {
					found = true
				}
			}
			if !found {
				t.Errorf("expected pattern %s to match %q, got %v",
					tt.wantID, tt.sentence, result.matches)
			}
		})
	}
}

func TestNewDeniabilityDetector_SkipsInvalidPatterns(t *testing.T) {
	cfg := model.DeniabilityConfig{
		Patterns: []model.DeniabilityPattern{
			{ID: "bad", Label: "bad", Weight: 0.5, Pattern: `(unclosed`},
			{ID: "good", Label: "good", Weight: 0.5, Pattern: `valid pattern`},
		},
		MaxScore:  1.0,
		Threshold: 0.5,
	}

	d := NewDeniabilityDetector(cfg)
	if len(d.patterns) != 1 {
		t.Fatalf("expected the invalid pattern to be skipped, got %d compiled", len(d.patterns))
	}
	if d.patterns[0].ID != "good" {
		t.Errorf("wrong pattern survived: %s", d.patterns[0].ID)
	}
}
