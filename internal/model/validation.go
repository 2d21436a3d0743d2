package model

// TechnicalValidation is the result of the pre-parse input sanity gate.
// When IsParseable is false the caller must not proceed to structural parsing.
type TechnicalValidation struct {
	IsParseable bool           `json:"is_parseable"`
	Errors      []InputError   `json:"errors,omitempty"`
	Warnings    []InputWarning `json:"warnings,omitempty"`
}

// InputError is a terminal validation failure with a remediation hint.
type InputError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion"`
}

// InputWarning is a non-blocking validation concern; downstream stages
// still run after warnings.
type InputWarning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Input error types.
const (
	ErrNotString  = "not_a_string"
	ErrEmptyInput = "empty_input"
	ErrTooShort   = "too_short"
	ErrTooLong    = "too_long"
	ErrBinaryData = "binary_data"
	ErrNoText     = "no_meaningful_text"
)

// Input warning types.
const (
	WarnLooksLikeHTML = "looks_like_html"
	WarnLooksLikeJSON = "looks_like_json"
	WarnLongLine      = "long_line"
	WarnNoLineBreaks  = "no_line_breaks"
	WarnMostlySymbols = "mostly_symbols"
)

// QualityStatus maps the quality score to a band.
type QualityStatus string

const (
	StatusExcellent QualityStatus = "excellent"
	StatusGood      QualityStatus = "good"
	StatusFair      QualityStatus = "fair"
	StatusPoor      QualityStatus = "poor"
	StatusRejected  QualityStatus = "rejected"
)

// QualityResult scores a parse for structural completeness.
type QualityResult struct {
	QualityScore int            `json:"quality_score"` // 0-100
	Status       QualityStatus  `json:"status"`
	Errors       []string       `json:"errors,omitempty"`
	Warnings     []string       `json:"warnings,omitempty"`
	ShouldReject bool           `json:"should_reject"`
	Metrics      QualityMetrics `json:"metrics"`
}

// QualityMetrics holds the raw measurements behind the score, so every
// deduction is explainable from the result alone.
type QualityMetrics struct {
	QuoteCount               int     `json:"quote_count"`
	UnknownSpeakerPercentage float64 `json:"unknown_speaker_percentage"`
	BodyLength               int     `json:"body_length"`
	HasDateline              bool    `json:"has_dateline"`
	HasHeadline              bool    `json:"has_headline"`
	HasForImmediateRelease   bool    `json:"has_for_immediate_release"`
}
