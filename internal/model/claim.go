package model

// Claim type tags. A claim carries a set of these; a statement with no
// hearsay/deniability/private-data/comparative markers is a direct claim.
const (
	TagStatistical = "statistical-claim"
	TagHearsay     = "hearsay"
	TagDeniability = "plausible-deniability"
	TagPrivateData = "private-data-claim"
	TagComparative = "comparative-claim"
	TagDirect      = "direct-claim"
)

// FactualClaim is one candidate factual statement extracted from body text,
// annotated with verifiability signals. The extractor never asserts whether
// the claim is true; it only classifies and scaffolds verification.
type FactualClaim struct {
	Statement     string         `json:"statement"`
	Types         []string       `json:"types"`
	Confidence    float64        `json:"confidence"`
	NumericClaims []NumericClaim `json:"numeric_claims,omitempty"`

	HasAttribution    bool   `json:"has_attribution"`
	AttributionSource string `json:"attribution_source,omitempty"`

	Verifiable         bool   `json:"verifiable"`
	ReasonUnverifiable string `json:"reason_unverifiable,omitempty"`

	// Hearsay annotations. Hearsay needs two checks: that the statement
	// was made, and that the underlying assertion holds.
	HearsayType       string   `json:"hearsay_type,omitempty"`
	OriginalSpeaker   string   `json:"original_speaker,omitempty"`
	VerificationNotes []string `json:"verification_notes,omitempty"`

	// Plausible-deniability annotations.
	DeniabilityScore  float64        `json:"deniability_score,omitempty"`
	DeniabilityReason string         `json:"deniability_reason,omitempty"`
	DeniabilityLabels []string       `json:"deniability_labels,omitempty"`
	MatchedPatterns   []PatternMatch `json:"matched_patterns,omitempty"`

	// Comparative annotations (nil unless TagComparative is present).
	Comparative *ComparativeClaim `json:"comparative,omitempty"`
}

// HasTag reports whether the claim carries the given type tag.
func (c FactualClaim) HasTag(tag string) bool {
	for _, t := range c.Types {
		if t == tag {
			return true
		}
	}
	return false
}

// NumericClaim is a single numeric token found in a statement.
type NumericClaim struct {
	Text      string  `json:"text"`
	Kind      string  `json:"kind"` // "currency", "percentage", "number"
	Value     float64 `json:"value"`
	Magnitude string  `json:"magnitude,omitempty"` // "thousand", "million", "billion", "trillion"
}

// PatternMatch records one deniability pattern that fired on a statement.
type PatternMatch struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Comparison types.
const (
	ComparisonGreaterThan    = "greater_than"
	ComparisonLessThan       = "less_than"
	ComparisonMultiplicative = "multiplicative"
	ComparisonTemporalRatio  = "temporal_ratio"
	ComparisonTemporalChange = "temporal_change"
	ComparisonOngoingTrend   = "ongoing_trend"
)

// ComparativeClaim specializes a claim that compares a metric against
// another value, a past point in time, or an ongoing trend.
type ComparativeClaim struct {
	ComparisonType    string             `json:"comparison_type"`
	Metrics           []string           `json:"metrics,omitempty"`
	TimeReference     string             `json:"time_reference,omitempty"`
	IsTemporal        bool               `json:"is_temporal"`
	IsTrend           bool               `json:"is_trend"`
	VerificationSteps []VerificationStep `json:"verification_steps,omitempty"`
}

// VerificationStep is one item in the lookup checklist for a comparative
// claim. It is a checklist for a human or downstream caller, not an
// automated verification.
type VerificationStep struct {
	Description string `json:"description"`
}
