package model

import "time"

// Report is the full artifact produced for one parsed release: the
// structured parse wrapped with technical and quality validation, plus
// any grounding results the caller requested.
type Report struct {
	Source   string    `json:"source"` // file path, "-" for stdin, or URL
	ParsedAt time.Time `json:"parsed_at"`

	Technical TechnicalValidation `json:"technical_validation"`
	Release   *ParsedRelease      `json:"release,omitempty"`
	Quality   *QualityResult      `json:"validation,omitempty"`

	Grounding []ClaimGrounding `json:"grounding,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional; never affects any score
}

// ClaimGrounding pairs a claim with its grounding outcome.
type ClaimGrounding struct {
	Statement string             `json:"statement"`
	Result    VerificationResult `json:"result"`
}

// LLMSummary is an optional model-generated summary of the report.
// It is produced after all scoring and is clearly separated from it.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
