package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// Summarizer wraps a provider and produces report-level summaries. A
// summarizer with a nil provider is disabled and produces nothing.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. An empty
// provider name yields a disabled summarizer, not an error.
func NewSummarizer(cfg Config) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("create LLM provider: %w", err)
	}
	return &Summarizer{provider: provider, config: cfg}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces the optional summary for a report. The
// summary is attached alongside the scored results, never mixed into
// them; a claim's classification is identical with or without it.
func (s *Summarizer) GenerateSummary(ctx context.Context, report *model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}
	if report.Release == nil {
		return nil, fmt.Errorf("report has no parsed release to summarize")
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize report: %w", err)
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}

	if resp.Summary == "" {
		summary.Warnings = append(summary.Warnings, "provider returned an empty summary")
	}
	if containsVerdictLanguage(resp.Summary) {
		summary.Warnings = append(summary.Warnings, "summary may assert truth rather than classification; review before publishing")
	}

	return summary, nil
}

// RenderSeparateMarkdown formats the summary as its own Markdown block,
// visually fenced off from the scored report.
func RenderSeparateMarkdown(summary *model.LLMSummary) string {
	if summary == nil || !summary.Enabled {
		return ""
	}

	var b strings.Builder
	b.WriteString("## AI Summary (advisory)\n\n")
	fmt.Fprintf(&b, "_Generated by %s/%s. This text does not affect any score._\n\n", summary.Provider, summary.Model)
	b.WriteString(summary.SummaryMD)
	b.WriteString("\n")
	for _, w := range summary.Warnings {
		fmt.Fprintf(&b, "\n> Warning: %s\n", w)
	}
	return b.String()
}

// containsVerdictLanguage flags summaries that drift from describing
// classifications into asserting truth.
func containsVerdictLanguage(summary string) bool {
	lower := strings.ToLower(summary)
	for _, phrase := range []string{"this claim is true", "this claim is false", "the claim is true", "the claim is false", "proven true", "proven false"} {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
