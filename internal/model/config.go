package model

import "time"

// Config is the complete presslens configuration. Every empirically tuned
// constant in the parser lives here as a named, overridable field; the
// defaults are a behavioral contract and should not be "fixed" casually.
type Config struct {
	Parser      ParserConfig      `yaml:"parser" json:"parser"`
	Quality     QualityConfig     `yaml:"quality" json:"quality"`
	Grounding   GroundingConfig   `yaml:"grounding" json:"grounding"`
	HTTP        HTTPConfig        `yaml:"http" json:"http"`
	Cache       CacheConfig       `yaml:"cache" json:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" json:"concurrency"`
	Output      OutputConfig      `yaml:"output" json:"output"`
	LLM         LLMConfig         `yaml:"llm" json:"llm"`
}

// ParserConfig tunes input validation, attribution and claim extraction.
type ParserConfig struct {
	// Technical validation thresholds.
	MinInputLength   int     `yaml:"min_input_length" json:"min_input_length"`
	MaxInputLength   int     `yaml:"max_input_length" json:"max_input_length"`
	MinLetters       int     `yaml:"min_letters" json:"min_letters"`
	MaxLineLength    int     `yaml:"max_line_length" json:"max_line_length"`
	MaxSymbolRatio   float64 `yaml:"max_symbol_ratio" json:"max_symbol_ratio"`

	// Attribution resolution.
	AttributionContext    int `yaml:"attribution_context" json:"attribution_context"`         // chars of context around a quote
	ContinuationMaxGap    int `yaml:"continuation_max_gap" json:"continuation_max_gap"`       // max chars between quotes to inherit a speaker
	ContinuationMaxBreaks int `yaml:"continuation_max_breaks" json:"continuation_max_breaks"` // max paragraph breaks in the gap

	// Claim extraction.
	MinSentenceWords int `yaml:"min_sentence_words" json:"min_sentence_words"`

	Deniability DeniabilityConfig `yaml:"deniability" json:"deniability"`
}

// DeniabilityPattern is one weighted entry in the deniability pattern bank.
type DeniabilityPattern struct {
	ID      string  `yaml:"id" json:"id"`
	Label   string  `yaml:"label" json:"label"`
	Weight  float64 `yaml:"weight" json:"weight"`
	Pattern string  `yaml:"pattern" json:"pattern"` // case-insensitive regex
}

// DeniabilityConfig drives the plausible-deniability detector. The bank,
// boosts and threshold mirror the pattern file the detector was trained
// against; scores aggregate per matched pattern and clip at MaxScore.
type DeniabilityConfig struct {
	Patterns                []DeniabilityPattern `yaml:"patterns" json:"patterns"`
	ClaimyWords             []string             `yaml:"claimy_words" json:"claimy_words"`
	RhetoricalStems         []string             `yaml:"rhetorical_stems" json:"rhetorical_stems"`
	ClaiminessBoost         float64              `yaml:"claiminess_boost" json:"claiminess_boost"`
	RhetoricalQuestionBoost float64              `yaml:"rhetorical_question_boost" json:"rhetorical_question_boost"`
	MaxScore                float64              `yaml:"max_score" json:"max_score"`
	Threshold               float64              `yaml:"threshold" json:"threshold"`
}

// Deniability labels.
const (
	LabelHearsayShield      = "hearsay-shield"
	LabelJAQing             = "jaqing"
	LabelPassiveAuthority   = "passive-authority"
	LabelAnonymousConsensus = "anonymous-consensus"
	LabelRhetoricalQuestion = "rhetorical-question"
	LabelNoncommittalFuture = "noncommittal-future"
)

// QualityConfig holds the fixed point deductions for the quality score.
// These are empirically chosen and treated as a golden-output contract.
type QualityConfig struct {
	MissingImmediateRelease int `yaml:"missing_immediate_release" json:"missing_immediate_release"`
	NoQuotes                int `yaml:"no_quotes" json:"no_quotes"`
	NoHeadline              int `yaml:"no_headline" json:"no_headline"`
	ShortBody               int `yaml:"short_body" json:"short_body"`
	MissingDateline         int `yaml:"missing_dateline" json:"missing_dateline"`
	UnknownSpeakerHigh      int `yaml:"unknown_speaker_high" json:"unknown_speaker_high"`
	UnknownSpeakerModerate  int `yaml:"unknown_speaker_moderate" json:"unknown_speaker_moderate"`
	SingleQuote             int `yaml:"single_quote" json:"single_quote"`
	ThinBody                int `yaml:"thin_body" json:"thin_body"`

	BodyCriticalLength   int     `yaml:"body_critical_length" json:"body_critical_length"`
	BodyWarnLength       int     `yaml:"body_warn_length" json:"body_warn_length"`
	UnknownHighRatio     float64 `yaml:"unknown_high_ratio" json:"unknown_high_ratio"`
	UnknownModerateRatio float64 `yaml:"unknown_moderate_ratio" json:"unknown_moderate_ratio"`

	RejectBelow    int `yaml:"reject_below" json:"reject_below"`
	ExcellentFloor int `yaml:"excellent_floor" json:"excellent_floor"`
	GoodFloor      int `yaml:"good_floor" json:"good_floor"`
	FairFloor      int `yaml:"fair_floor" json:"fair_floor"`
	PoorFloor      int `yaml:"poor_floor" json:"poor_floor"`
}

// CredibilityConfig is the fixed domain tier table used to score sources.
type CredibilityConfig struct {
	PrimaryDomains  []string          `yaml:"primary_domains" json:"primary_domains"`
	ResearchDomains []string          `yaml:"research_domains" json:"research_domains"`
	NewsDomains     []string          `yaml:"news_domains" json:"news_domains"`
	DomainMap       map[string]string `yaml:"domain_map,omitempty" json:"domain_map,omitempty"` // explicit host -> tier overrides

	PrimaryScore  float64 `yaml:"primary_score" json:"primary_score"`
	ResearchScore float64 `yaml:"research_score" json:"research_score"`
	NewsScore     float64 `yaml:"news_score" json:"news_score"`
	UnknownScore  float64 `yaml:"unknown_score" json:"unknown_score"`
	CredibleFloor float64 `yaml:"credible_floor" json:"credible_floor"`
}

// GroundingConfig tunes the claim grounding scaffold.
type GroundingConfig struct {
	MaxResults      int           `yaml:"max_results" json:"max_results"`             // per-query search results to evaluate
	FetchTimeout    time.Duration `yaml:"fetch_timeout" json:"fetch_timeout"`         // per-fetch budget
	ClaimBudget     time.Duration `yaml:"claim_budget" json:"claim_budget"`           // overall per-claim budget
	SupportFloor    float64       `yaml:"support_floor" json:"support_floor"`         // term-match ratio needed for "supported"
	Credibility     CredibilityConfig `yaml:"credibility" json:"credibility"`
	SourceHints     map[string]string `yaml:"source_hints,omitempty" json:"source_hints,omitempty"` // attribution phrase -> search domain hint
}

// HTTPConfig configures the default fetcher the CLI wires into grounding.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" json:"max_body_bytes"`
	HTTPProxy    string        `yaml:"http_proxy,omitempty" json:"http_proxy,omitempty"`
	HTTPSProxy   string        `yaml:"https_proxy,omitempty" json:"https_proxy,omitempty"`
	NoProxy      string        `yaml:"no_proxy,omitempty" json:"no_proxy,omitempty"`
	RespectRobots bool         `yaml:"respect_robots" json:"respect_robots"`
	RatePerDomain float64      `yaml:"rate_per_domain" json:"rate_per_domain"` // requests/second
	RateBurst     int          `yaml:"rate_burst" json:"rate_burst"`
}

// CacheConfig configures the fetched-source cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" json:"enabled"`
	Dir       string        `yaml:"dir,omitempty" json:"dir,omitempty"`
	MemoryTTL time.Duration `yaml:"memory_ttl" json:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" json:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work.
type ConcurrencyConfig struct {
	GroundingWorkers int `yaml:"grounding_workers" json:"grounding_workers"` // independent claims grounded in parallel
	BatchWorkers     int `yaml:"batch_workers" json:"batch_workers"`         // files parsed in parallel
}

// OutputConfig controls report rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" json:"verbose"`
	IncludeFooter bool `yaml:"include_footer" json:"include_footer"`
}

// LLMConfig configures the optional report summarizer. The summary is
// generated after scoring and never affects any score.
type LLMConfig struct {
	Provider  string `yaml:"provider,omitempty" json:"provider,omitempty"` // "openai" or "" (disabled)
	Model     string `yaml:"model,omitempty" json:"model,omitempty"`
	APIKey    string `yaml:"-" json:"-"`
	BaseURL   string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Timeout   int    `yaml:"timeout" json:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" json:"max_tokens"`
}

// DefaultConfig returns the configuration with all tuned defaults.
func DefaultConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			MinInputLength:        50,
			MaxInputLength:        1_000_000,
			MinLetters:            20,
			MaxLineLength:         5_000,
			MaxSymbolRatio:        0.30,
			AttributionContext:    200,
			ContinuationMaxGap:    150,
			ContinuationMaxBreaks: 1,
			MinSentenceWords:      4,
			Deniability:           DefaultDeniabilityConfig(),
		},
		Quality: QualityConfig{
			MissingImmediateRelease: 30,
			NoQuotes:                40,
			NoHeadline:              25,
			ShortBody:               35,
			MissingDateline:         15,
			UnknownSpeakerHigh:      20,
			UnknownSpeakerModerate:  10,
			SingleQuote:             5,
			ThinBody:                5,
			BodyCriticalLength:      100,
			BodyWarnLength:          200,
			UnknownHighRatio:        0.75,
			UnknownModerateRatio:    0.50,
			RejectBelow:             40,
			ExcellentFloor:          90,
			GoodFloor:               75,
			FairFloor:               60,
			PoorFloor:               40,
		},
		Grounding: GroundingConfig{
			MaxResults:   5,
			FetchTimeout: 15 * time.Second,
			ClaimBudget:  2 * time.Minute,
			SupportFloor: 0.5,
			Credibility:  DefaultCredibilityConfig(),
			SourceHints: map[string]string{
				"the cdc":                     "site:cdc.gov",
				"cdc":                         "site:cdc.gov",
				"the census bureau":           "site:census.gov",
				"bureau of labor statistics":  "site:bls.gov",
				"bls":                         "site:bls.gov",
				"the congressional budget office": "site:cbo.gov",
				"cbo":                         "site:cbo.gov",
				"the fbi":                     "site:fbi.gov",
				"the fec":                     "site:fec.gov",
				"the treasury":                "site:treasury.gov",
			},
		},
		HTTP: HTTPConfig{
			Timeout:       15 * time.Second,
			UserAgent:     "Presslens/0.1 (+https://github.com/presslens/presslens)",
			MaxBodyBytes:  2_000_000,
			RespectRobots: true,
			RatePerDomain: 1.0,
			RateBurst:     3,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			GroundingWorkers: 4,
			BatchWorkers:     8,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}

// DefaultCredibilityConfig returns the built-in domain tier table.
func DefaultCredibilityConfig() CredibilityConfig {
	return CredibilityConfig{
		PrimaryDomains: []string{
			"bls.gov", "census.gov", "cdc.gov", "cbo.gov", "gao.gov",
			"bea.gov", "treasury.gov", "congress.gov", "federalregister.gov",
			"fec.gov", "fbi.gov", "irs.gov", "whitehouse.gov",
		},
		ResearchDomains: []string{
			"pewresearch.org", "brookings.edu", "rand.org", "kff.org",
			"urban.org", "nber.org", "taxpolicycenter.org",
		},
		NewsDomains: []string{
			"apnews.com", "reuters.com", "bloomberg.com", "npr.org",
			"nytimes.com", "washingtonpost.com", "wsj.com", "politico.com",
		},
		PrimaryScore:  0.95,
		ResearchScore: 0.75,
		NewsScore:     0.60,
		UnknownScore:  0.20,
		CredibleFloor: 0.60,
	}
}

// DefaultDeniabilityConfig returns the built-in pattern bank. Weights are
// calibrated so a single strong pattern sits just below the threshold and
// any reinforcing signal pushes the sentence over it.
func DefaultDeniabilityConfig() DeniabilityConfig {
	return DeniabilityConfig{
		Patterns: []DeniabilityPattern{
			{ID: "pd-hearsay-people-saying", Label: LabelHearsayShield, Weight: 0.40, Pattern: `people are (?:saying|telling me)`},
			{ID: "pd-hearsay-folks", Label: LabelHearsayShield, Weight: 0.35, Pattern: `folks (?:are telling|tell) (?:me|us)`},
			{ID: "pd-hearsay-ive-heard", Label: LabelHearsayShield, Weight: 0.30, Pattern: `i(?:'ve| have) (?:heard|been told)`},
			{ID: "pd-hearsay-many-say", Label: LabelHearsayShield, Weight: 0.35, Pattern: `many people (?:say|believe|think)`},
			{ID: "pd-jaq-just-asking", Label: LabelJAQing, Weight: 0.40, Pattern: `(?:i'm |i am )?just asking(?: questions)?`},
			{ID: "pd-jaq-not-saying-but", Label: LabelJAQing, Weight: 0.45, Pattern: `i'm not saying\b.*\bbut\b`},
			{ID: "pd-jaq-makes-you-wonder", Label: LabelJAQing, Weight: 0.35, Pattern: `makes you wonder`},
			{ID: "pd-jaq-isnt-it", Label: LabelJAQing, Weight: 0.30, Pattern: `isn't it (?:strange|odd|interesting|curious)`},
			{ID: "pd-passive-widely-believed", Label: LabelPassiveAuthority, Weight: 0.40, Pattern: `it is widely (?:believed|known|understood)`},
			{ID: "pd-passive-been-said", Label: LabelPassiveAuthority, Weight: 0.35, Pattern: `it(?:'s| has) been (?:said|suggested|reported)`},
			{ID: "pd-passive-some-experts", Label: LabelPassiveAuthority, Weight: 0.30, Pattern: `some (?:experts|observers|analysts) (?:say|believe|suggest)`},
			{ID: "pd-anon-everybody-knows", Label: LabelAnonymousConsensus, Weight: 0.35, Pattern: `every(?:body|one) knows`},
			{ID: "pd-anon-everyone-saying", Label: LabelAnonymousConsensus, Weight: 0.35, Pattern: `every(?:body|one) is saying`},
			{ID: "pd-anon-nobody-denies", Label: LabelAnonymousConsensus, Weight: 0.30, Pattern: `nobody (?:denies|disputes|doubts)`},
			{ID: "pd-future-well-see", Label: LabelNoncommittalFuture, Weight: 0.35, Pattern: `we(?:'ll| will) see what happens`},
			{ID: "pd-future-time-will-tell", Label: LabelNoncommittalFuture, Weight: 0.30, Pattern: `time will tell`},
			{ID: "pd-future-looking-into", Label: LabelNoncommittalFuture, Weight: 0.25, Pattern: `(?:we're|we are) (?:looking into|taking a look at) (?:it|that)`},
			{ID: "pd-rhet-question", Label: LabelRhetoricalQuestion, Weight: 0.30, Pattern: `(?:who|what|why|how come)\b[^.?!]*\?`},
		},
		ClaimyWords: []string{
			"tremendous", "disaster", "corrupt", "rigged", "hoax",
			"worst", "best ever", "unbelievable", "massive", "total failure",
		},
		RhetoricalStems: []string{
			"who", "what", "why", "how come", "isn't it", "don't you think",
		},
		ClaiminessBoost:         0.10,
		RhetoricalQuestionBoost: 0.15,
		MaxScore:                1.0,
		Threshold:               0.50,
	}
}
