package extract

import (
	"reflect"
	"strings"
	"testing"

	"github.com/presslens/presslens/internal/model"
)

func TestDetectComparative_TemporalRatio(t *testing.T) {
	claim := detectComparative("The deficit is double what it was two years ago.")
	if claim == nil {
		t.Fatal("expected a comparative claim")
	}

	if claim.ComparisonType != model.ComparisonTemporalRatio {
		t.Errorf("expected temporal_ratio, got %s", claim.ComparisonType)
	}
	if !claim.IsTemporal || claim.IsTrend {
		t.Errorf("expected temporal non-trend claim, got temporal=%v trend=%v",
			claim.IsTemporal, claim.IsTrend)
	}
	if claim.TimeReference != "two years ago" {
		t.Errorf("unexpected time reference: %q", claim.TimeReference)
	}
	if !reflect.DeepEqual(claim.Metrics, []string{"deficit"}) {
		t.Errorf("unexpected metrics: %v", claim.Metrics)
	}
	if len(claim.VerificationSteps) != 3 {
		t.Fatalf("temporal ratio needs current, historical and ratio steps, got %d",
			len(claim.VerificationSteps))
	}
	if !strings.Contains(claim.VerificationSteps[1].Description, "historical value") {
		t.Errorf("second step must request the historical value: %q",
			claim.VerificationSteps[1].Description)
	}
	if !strings.Contains(claim.VerificationSteps[2].Description, "ratio or delta") {
		t.Errorf("third step must compute the comparison: %q",
			claim.VerificationSteps[2].Description)
	}
}

func TestDetectComparative_Types(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		wantType string
	}{
		{
			"temporal change",
			"Wages are higher than they were in 2019.",
			model.ComparisonTemporalChange,
		},
		{
			"multiplicative",
			"We raised twice as much as our opponent.",
			model.ComparisonMultiplicative,
		},
		{
			"less than",
			"Unemployment is lower today than under the previous administration.",
			model.ComparisonLessThan,
		},
		{
			"greater than",
			"Our turnout was bigger than theirs.",
			model.ComparisonGreaterThan,
		},
		{
			"ongoing trend",
			"Crime keeps rising year after year.",
			model.ComparisonOngoingTrend,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claim := detectComparative(tt.sentence)
			if claim == nil {
				t.Fatalf("expected a comparative claim for %q", tt.sentence)
			}
			if claim.ComparisonType != tt.wantType {
				t.Errorf("expected %s, got %s", tt.wantType, claim.ComparisonType)
			}
		})
	}
}

func TestDetectComparative_TrendSteps(t *testing.T) {
	claim := detectComparative("Crime keeps rising year after year.")
	if claim == nil {
		t.Fatal("expected a comparative claim")
	}

	if !claim.IsTrend || !claim.IsTemporal {
		t.Errorf("trend claim must be temporal, got temporal=%v trend=%v",
			claim.IsTemporal, claim.IsTrend)
	}
	if len(claim.VerificationSteps) != 3 {
		t.Fatalf("trend needs per-period steps, got %d", len(claim.VerificationSteps))
	}
	if !strings.Contains(claim.VerificationSteps[2].Description, "every period") {
		t.Errorf("trend must be checked across every period: %q",
			claim.VerificationSteps[2].Description)
	}
	if !reflect.DeepEqual(claim.Metrics, []string{"crime"}) {
		t.Errorf("unexpected metrics: %v", claim.Metrics)
	}
}

func TestDetectComparative_NoComparison(t *testing.T) {
	sentences := []string{
		"The campaign opened new field offices across the state.",
		"Jane Smith will speak at the rally on Saturday.",
	}

	for _, s := range sentences {
		if claim := detectComparative(s); claim != nil {
			t.Errorf("unexpected comparative claim for %q: %+v", s, claim)
		}
	}
}

func TestDetectComparative_UnknownMetricStillChecked(t *testing.T) {
	claim := detectComparative("Attendance was double what it was two years ago.")
	if claim == nil {
		t.Fatal("expected a comparative claim")
	}
	if len(claim.Metrics) != 0 {
		t.Errorf("no known metric word expected, got %v", claim.Metrics)
	}
	if len(claim.VerificationSteps) == 0 {
		t.Fatal("steps must still be produced without a recognized metric")
	}
	if !strings.Contains(claim.VerificationSteps[0].Description, "the stated metric") {
		t.Errorf("steps must fall back to a generic metric phrase: %q",
			claim.VerificationSteps[0].Description)
	}
}
