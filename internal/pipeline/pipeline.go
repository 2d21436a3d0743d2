// Package pipeline orchestrates the parse: technical validation,
// segmentation, attribution, claim extraction, classification and quality
// scoring. Parsing is synchronous and pure; one call produces one result
// with no shared state across calls.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/presslens/presslens/internal/attribution"
	"github.com/presslens/presslens/internal/classify"
	"github.com/presslens/presslens/internal/extract"
	"github.com/presslens/presslens/internal/ground"
	"github.com/presslens/presslens/internal/llm"
	"github.com/presslens/presslens/internal/model"
	"github.com/presslens/presslens/internal/segment"
	"github.com/presslens/presslens/internal/validate"
)

// Parser composes the parsing stages.
type Parser struct {
	technical  *validate.TechnicalValidator
	segmenter  *segment.Segmenter
	resolver   *attribution.Resolver
	extractor  *extract.ClaimExtractor
	classifier *classify.Classifier
	quality    *validate.QualityValidator
	grounder   *ground.Grounder
	summarizer *llm.Summarizer // nil when disabled
	renderer   *Renderer
	cfg        *model.Config
}

// NewParser builds a parser from configuration.
func NewParser(cfg *model.Config) *Parser {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM provider unavailable: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Parser{
		technical:  validate.NewTechnicalValidator(cfg.Parser),
		segmenter:  segment.NewSegmenter(),
		resolver:   attribution.NewResolver(cfg.Parser),
		extractor:  extract.NewClaimExtractor(cfg.Parser),
		classifier: classify.NewClassifier(),
		quality:    validate.NewQualityValidator(cfg.Quality),
		grounder:   ground.NewGrounder(cfg.Grounding),
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		cfg:        cfg,
	}
}

// Parse converts press-release text into a structured result. It never
// fails: absent sections come back empty and unresolved speakers keep the
// sentinel. Callers that need input rejection use ParseWithValidation.
func (p *Parser) Parse(text string) *model.ParsedRelease {
	doc := p.segmenter.Segment(text)

	opts := attribution.Options{
		Headline: doc.Headline,
		Lead:     doc.Lead,
	}
	if doc.SubheadSpeaker != nil {
		opts.SubheadName = doc.SubheadSpeaker.Name
		opts.SubheadTitle = doc.SubheadSpeaker.Title
		opts.SubheadPreview = doc.SubheadSpeaker.Preview
	}
	quotes := p.resolver.Resolve(text, opts)

	paragraphs := doc.Body
	if doc.Lead != "" {
		paragraphs = append([]string{doc.Lead}, doc.Body...)
	}
	claims := p.extractor.Extract(paragraphs)

	releaseType, subtypes, issues := p.classifier.Classify(doc.Headline, doc.Lead)

	return &model.ParsedRelease{
		Headline:       doc.Headline,
		Subhead:        doc.Subhead,
		Dateline:       doc.Dateline,
		LeadParagraph:  doc.Lead,
		BodyParagraphs: doc.Body,
		Quotes:         quotes,
		Claims:         claims,
		ContactInfo:    doc.Contact,
		ReleaseType:    releaseType,
		Subtypes:       subtypes,
		Issues:         issues,
	}
}

// ParseWithValidation runs the technical gate, the core parse, and the
// quality assessment. When the input is not parseable the report carries
// only the technical result.
func (p *Parser) ParseWithValidation(source, text string) *model.Report {
	report := &model.Report{
		Source:   source,
		ParsedAt: time.Now().UTC(),
	}

	report.Technical = p.technical.CheckText(text)
	if !report.Technical.IsParseable {
		return report
	}

	report.Release = p.Parse(text)
	quality := p.quality.Assess(report.Release, text)
	report.Quality = &quality

	return report
}

// GroundClaims grounds the report's claims through the injected callbacks
// and attaches the outcomes. Grounding runs after parsing and scoring and
// modifies neither.
func (p *Parser) GroundClaims(ctx context.Context, report *model.Report, opts ground.GroundOptions) {
	if report.Release == nil || len(report.Release.Claims) == 0 {
		return
	}

	results := p.grounder.GroundAll(ctx, report.Release.Claims, opts, p.cfg.Concurrency.GroundingWorkers)
	for i, claim := range report.Release.Claims {
		report.Grounding = append(report.Grounding, model.ClaimGrounding{
			Statement: claim.Statement,
			Result:    results[i],
		})
	}
}

// Summarize attaches the optional LLM summary. It runs last and never
// affects any score; failures only warn.
func (p *Parser) Summarize(ctx context.Context, report *model.Report) {
	if p.summarizer == nil || !p.summarizer.IsEnabled() {
		return
	}
	summary, err := p.summarizer.GenerateSummary(ctx, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		return
	}
	report.LLM = summary
}

// RenderReport prints the stdout summary and writes any requested
// artifacts.
func (p *Parser) RenderReport(report *model.Report, jsonPath, mdPath string, verbose bool) error {
	p.renderer.RenderSummary(report)

	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", mdPath)
		}
	}

	return nil
}

// Grounder exposes the configured grounder for callers that ground claims
// outside a full report.
func (p *Parser) Grounder() *ground.Grounder {
	return p.grounder
}
