package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// Provider generates a natural-language summary of a parse report.
// Summaries are advisory: they are produced after all scoring and must
// never influence quality or grounding results.
type Provider interface {
	Name() string
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest is the input to a provider.
type SummarizeRequest struct {
	Report    *model.Report
	Prompt    string // optional custom prompt
	Model     string
	MaxTokens int
}

// SummarizeResponse is a provider's output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds provider configuration.
type Config struct {
	Provider  string // "openai" or "" (disabled)
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   int // seconds
	MaxTokens int
}

// ConfigFromModel converts the app-level LLM config.
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// NewProvider creates a provider from configuration. An empty provider
// name disables summarization.
func NewProvider(cfg Config) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai":
		return NewOpenAIProvider(cfg)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", cfg.Provider)
	}
}

// BuildPrompt constructs the default summarization prompt. The rules keep
// the model inside the report: it describes parse structure and claim
// classifications, never the truth of any claim.
func BuildPrompt(report *model.Report) string {
	rel := report.Release
	if rel == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(`You are summarizing a press-release parse report. The parser classifies claims by verifiability - it NEVER determines whether a claim is true.

RULES:
1. Describe only what is in the report below.
2. Never say a claim is true or false; describe how it was classified and why it may need review.
3. Call out hearsay, plausible-deniability phrasing and unverifiable private-data claims explicitly.

Report:
`)
	fmt.Fprintf(&b, "- Headline: %s\n", rel.Headline)
	fmt.Fprintf(&b, "- Release type: %s\n", rel.ReleaseType.Type)
	fmt.Fprintf(&b, "- Quotes: %d", len(rel.Quotes))
	unknown := 0
	for _, q := range rel.Quotes {
		if !q.IsAttributed() {
			unknown++
		}
	}
	fmt.Fprintf(&b, " (%d with unresolved speakers)\n", unknown)
	fmt.Fprintf(&b, "- Claims: %d\n", len(rel.Claims))

	for i, c := range rel.Claims {
		if i >= 10 {
			fmt.Fprintf(&b, "... and %d more claims\n", len(rel.Claims)-10)
			break
		}
		fmt.Fprintf(&b, "  - [%s] %s\n", strings.Join(c.Types, ","), c.Statement)
	}

	if report.Quality != nil {
		fmt.Fprintf(&b, "- Quality score: %d/100 (%s)\n", report.Quality.QualityScore, report.Quality.Status)
	}

	b.WriteString("\nProvide a 3-5 sentence summary of the release's structure and which claims most need human verification.")
	return b.String()
}
