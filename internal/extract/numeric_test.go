package extract

import "testing"

func TestExtractNumericClaims_MixedKinds(t *testing.T) {
	claims := extractNumericClaims("The campaign raised $2.5 million from 45,000 donors, a 30% increase.")

	if len(claims) != 3 {
		t.Fatalf("expected 3 numeric claims, got %d: %v", len(claims), claims)
	}

	currency := claims[0]
	if currency.Kind != "currency" || currency.Text != "$2.5 million" {
		t.Errorf("unexpected currency claim: %+v", currency)
	}
	if currency.Value != 2.5 || currency.Magnitude != "million" {
		t.Errorf("currency value/magnitude wrong: %+v", currency)
	}

	percentage := claims[1]
	if percentage.Kind != "percentage" || percentage.Value != 30 {
		t.Errorf("unexpected percentage claim: %+v", percentage)
	}

	number := claims[2]
	if number.Kind != "number" || number.Value != 45000 {
		t.Errorf("unexpected bare number claim: %+v", number)
	}
}

func TestExtractNumericClaims_SpecificKindShadowsBareNumber(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		wantKind string
		wantVal  float64
	}{
		{"percent word", "Turnout rose 12 percent statewide.", "percentage", 12},
		{"percentage points", "The rate fell 5 percentage points.", "percentage", 5},
		{"currency with magnitude", "The bill costs $3 billion over ten years.", "currency", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := extractNumericClaims(tt.sentence)

			for _, c := range claims {
				if c.Kind == "number" && c.Value == tt.wantVal {
					t.Errorf("token double-reported as bare number: %+v", claims)
				}
			}

			found := false
			for _, c := range claims {
				if c.Kind == tt.wantKind && c.Value == tt.wantVal {
					found = true
				}
			}
			if !found {
				t.Errorf("expected %s claim with value %v, got %v", tt.wantKind, tt.wantVal, claims)
			}
		})
	}
}

func TestExtractNumericClaims_CommaGrouping(t *testing.T) {
	claims := extractNumericClaims("More than 1,250,000 residents cast ballots.")

	if len(claims) != 1 {
		t.Fatalf("expected 1 claim, got %d: %v", len(claims), claims)
	}
	if claims[0].Value != 1250000 {
		t.Errorf("comma-grouped value parsed wrong: %+v", claims[0])
	}
}

func TestExtractNumericClaims_None(t *testing.T) {
	if claims := extractNumericClaims("The campaign opened new field offices."); len(claims) != 0 {
		t.Errorf("expected no numeric claims, got %v", claims)
	}
}
