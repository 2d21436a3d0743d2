package model

// CredibilityTier classifies a source domain.
type CredibilityTier string

const (
	TierPrimary  CredibilityTier = "primary"  // Government and statistical agencies, federal records
	TierResearch CredibilityTier = "research" // Established research institutions, academic domains
	TierNews     CredibilityTier = "news"     // Wire services and major newsrooms
	TierUnknown  CredibilityTier = "unknown"  // Unmatched; never approved for use
)

// SourceCredibility is the result of scoring a candidate source URL
// against the fixed domain tier table.
type SourceCredibility struct {
	Domain     string          `json:"domain"`
	Tier       CredibilityTier `json:"tier"`
	Score      float64         `json:"score"`
	IsCredible bool            `json:"is_credible"`
	Concerns   []string        `json:"concerns,omitempty"`
}

// SearchResult is one hit returned by an injected search callback.
type SearchResult struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// SupportCheck is the result of comparing fetched content against a claim.
type SupportCheck struct {
	Supported      bool     `json:"supported"`
	Confidence     float64  `json:"confidence"`
	MatchedTerms   []string `json:"matched_terms,omitempty"`
	TermMatchRatio float64  `json:"term_match_ratio"`
	Excerpt        string   `json:"excerpt,omitempty"`
}

// GroundingAttempt records one search-result evaluation during grounding.
// Fetch failures are captured in Error and never abort remaining attempts.
type GroundingAttempt struct {
	Query       string            `json:"query"`
	URL         string            `json:"url"`
	Credibility SourceCredibility `json:"credibility"`
	Support     *SupportCheck     `json:"support,omitempty"`
	Error       string            `json:"error,omitempty"`
}

// VerificationResult is the outcome of grounding one claim. Verified is
// only set when a credible source actually supported the claim; "attempted
// but inconclusive" is the zero state, never a fabricated verdict.
type VerificationResult struct {
	Verified          bool               `json:"verified"`
	Confidence        float64            `json:"confidence"`
	SourceURL         string             `json:"source_url,omitempty"`
	SourceCredibility *SourceCredibility `json:"source_credibility,omitempty"`
	Excerpt           string             `json:"excerpt,omitempty"`
	AllAttempts       []GroundingAttempt `json:"all_attempts"`
}
