package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/presslens/presslens/internal/llm"
	"github.com/presslens/presslens/internal/model"
)

// Renderer writes reports as JSON artifacts and human-readable Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as an indented JSON artifact.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	var b strings.Builder

	title := "Press Release Report"
	if report.Release != nil && report.Release.Headline != "" {
		title = report.Release.Headline
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Source: %s  \nParsed: %s\n\n", report.Source, report.ParsedAt.Format("2006-01-02 15:04 UTC"))

	if !report.Technical.IsParseable {
		b.WriteString("## Rejected\n\n")
		for _, e := range report.Technical.Errors {
			fmt.Fprintf(&b, "- **%s**: %s (%s)\n", e.Type, e.Message, e.Suggestion)
		}
		return writeFile(path, b.String())
	}

	if report.Quality != nil {
		fmt.Fprintf(&b, "## Quality: %d/100 (%s)\n\n", report.Quality.QualityScore, report.Quality.Status)
		for _, e := range report.Quality.Errors {
			fmt.Fprintf(&b, "- ERROR: %s\n", e)
		}
		for _, w := range report.Quality.Warnings {
			fmt.Fprintf(&b, "- warning: %s\n", w)
		}
		b.WriteString("\n")
	}

	rel := report.Release
	if rel != nil {
		fmt.Fprintf(&b, "## Structure\n\n")
		fmt.Fprintf(&b, "- Type: %s (%.2f)\n", rel.ReleaseType.Type, rel.ReleaseType.Confidence)
		if !rel.Dateline.IsZero() {
			fmt.Fprintf(&b, "- Dateline: %s — %s (%s)\n", rel.Dateline.Location, rel.Dateline.Date, rel.Dateline.Format)
		}
		fmt.Fprintf(&b, "- Body paragraphs: %d\n\n", len(rel.BodyParagraphs))

		if len(rel.Quotes) > 0 {
			b.WriteString("## Quotes\n\n")
			for _, q := range rel.Quotes {
				marker := ""
				if q.IsContinuation {
					marker = " (continuation)"
				}
				fmt.Fprintf(&b, "- %q — %s%s\n", truncate(q.QuoteText, 120), q.SpeakerName, marker)
			}
			b.WriteString("\n")
		}

		if len(rel.Claims) > 0 {
			b.WriteString("## Claims\n\n")
			for _, c := range rel.Claims {
				fmt.Fprintf(&b, "- [%s] %s\n", strings.Join(c.Types, ", "), truncate(c.Statement, 160))
			}
			b.WriteString("\n")
		}
	}

	if len(report.Grounding) > 0 {
		b.WriteString("## Grounding\n\n")
		for _, g := range report.Grounding {
			verdict := "inconclusive"
			if g.Result.Verified {
				verdict = "supported by " + g.Result.SourceURL
			}
			fmt.Fprintf(&b, "- %s → %s (%d attempts)\n", truncate(g.Statement, 100), verdict, len(g.Result.AllAttempts))
		}
		b.WriteString("\n")
	}

	if report.LLM != nil {
		b.WriteString(llm.RenderSeparateMarkdown(report.LLM))
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by presslens. Claim annotations describe verifiability, never truth.\n")
	}

	return writeFile(path, b.String())
}

// RenderSummary prints a one-screen summary to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	if !report.Technical.IsParseable {
		fmt.Printf("✗ Input rejected (%d error(s))\n", len(report.Technical.Errors))
		for _, e := range report.Technical.Errors {
			fmt.Printf("  - %s: %s\n", e.Type, e.Message)
		}
		return
	}

	rel := report.Release
	fmt.Printf("Headline:  %s\n", rel.Headline)
	if !rel.Dateline.IsZero() {
		fmt.Printf("Dateline:  %s — %s\n", rel.Dateline.Location, rel.Dateline.Date)
	}
	fmt.Printf("Type:      %s\n", rel.ReleaseType.Type)
	fmt.Printf("Quotes:    %d\n", len(rel.Quotes))
	fmt.Printf("Claims:    %d\n", len(rel.Claims))
	if report.Quality != nil {
		fmt.Printf("Quality:   %d/100 (%s)\n", report.Quality.QualityScore, report.Quality.Status)
		if report.Quality.ShouldReject {
			fmt.Println("Verdict:   REJECT")
		}
	}
	if len(report.Grounding) > 0 {
		verified := 0
		for _, g := range report.Grounding {
			if g.Result.Verified {
				verified++
			}
		}
		fmt.Printf("Grounded:  %d/%d claims supported by a credible source\n", verified, len(report.Grounding))
	}
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
