package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/presslens/presslens/internal/ground"
	"github.com/presslens/presslens/internal/model"
)

const sampleRelease = `FOR IMMEDIATE RELEASE

Smith Campaign Announces Comprehensive Jobs Plan

SPRINGFIELD, IL — March 15, 2024 — The Smith campaign today unveiled a jobs plan aimed at manufacturing workers across the state.

The plan invests $500 million in apprenticeship programs and tax credits for small businesses.

"We are going to rebuild this economy from the middle out," said Jane Smith, candidate for Governor.

###

Media contact: press@smithforgov.example (555) 123-4567`

func newParser() *Parser {
	return NewParser(model.DefaultConfig())
}

func TestParse_FullRelease(t *testing.T) {
	release := newParser().Parse(sampleRelease)

	if release.Headline != "Smith Campaign Announces Comprehensive Jobs Plan" {
		t.Errorf("unexpected headline: %q", release.Headline)
	}
	if release.Dateline.Location != "SPRINGFIELD, IL" || release.Dateline.Date != "March 15, 2024" {
		t.Errorf("unexpected dateline: %+v", release.Dateline)
	}

	if len(release.Quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d: %v", len(release.Quotes), release.Quotes)
	}
	if release.Quotes[0].SpeakerName != "Jane Smith" {
		t.Errorf("unexpected speaker: %q", release.Quotes[0].SpeakerName)
	}

	var statistical bool
	for _, c := range release.Claims {
		if c.HasTag(model.TagStatistical) {
			statistical = true
		}
	}
	if !statistical {
		t.Errorf("expected a statistical claim from the investment figure, got %v", release.Claims)
	}

	if release.ReleaseType.Type != "policy" {
		t.Errorf("expected policy release, got %s", release.ReleaseType.Type)
	}

	var economy bool
	for _, tag := range release.Issues {
		if tag.Issue == "economy" {
			economy = true
		}
	}
	if !economy {
		t.Errorf("expected economy issue tag, got %v", release.Issues)
	}
}

func TestParse_NeverFails(t *testing.T) {
	release := newParser().Parse("just one short line")

	if release == nil {
		t.Fatal("parse must always return a release")
	}
	if len(release.Quotes) != 0 {
		t.Errorf("unexpected quotes: %v", release.Quotes)
	}
}

func TestParseWithValidation_FullRelease(t *testing.T) {
	report := newParser().ParseWithValidation("release.txt", sampleRelease)

	if !report.Technical.IsParseable {
		t.Fatalf("expected parseable input: %+v", report.Technical)
	}
	if report.Release == nil || report.Quality == nil {
		t.Fatal("parseable input must produce release and quality sections")
	}
	if report.Source != "release.txt" {
		t.Errorf("unexpected source: %q", report.Source)
	}
	if report.ParsedAt.IsZero() {
		t.Error("parsed-at timestamp missing")
	}
	// One attributed quote costs the single-quote deduction only.
	if report.Quality.QualityScore != 95 {
		t.Errorf("expected quality 95, got %d (errors: %v, warnings: %v)",
			report.Quality.QualityScore, report.Quality.Errors, report.Quality.Warnings)
	}
}

func TestParseWithValidation_TechnicalGateShortCircuits(t *testing.T) {
	report := newParser().ParseWithValidation("-", "Hi.")

	if report.Technical.IsParseable {
		t.Fatal("short input must fail the technical gate")
	}
	if report.Release != nil || report.Quality != nil {
		t.Error("rejected input must not be parsed or scored")
	}
}

type listSearcher struct{ urls []string }

func (s listSearcher) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	var results []model.SearchResult
	for _, u := range s.urls {
		results = append(results, model.SearchResult{URL: u})
	}
	return results, nil
}

type mapFetcher struct{ pages map[string]string }

func (f mapFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.pages[url], nil
}

func TestGroundClaims_AttachesResults(t *testing.T) {
	p := newParser()
	report := p.ParseWithValidation("release.txt", sampleRelease)

	url := "https://www.springfield.il.gov/budget/apprenticeships"
	p.GroundClaims(context.Background(), report, ground.GroundOptions{
		Searcher: listSearcher{urls: []string{url}},
		Fetcher: mapFetcher{pages: map[string]string{
			url: "The plan invests $500 million in apprenticeship programs and tax credits for small businesses.",
		}},
	})

	if len(report.Grounding) != len(report.Release.Claims) {
		t.Fatalf("expected one grounding entry per claim, got %d for %d claims",
			len(report.Grounding), len(report.Release.Claims))
	}
	var verified bool
	for _, g := range report.Grounding {
		if g.Result.Verified {
			verified = true
		}
	}
	if !verified {
		t.Error("a matching government source must verify the investment claim")
	}
}

func TestGroundClaims_NoClaimsNoGrounding(t *testing.T) {
	p := newParser()
	report := &model.Report{Release: &model.ParsedRelease{}}

	p.GroundClaims(context.Background(), report, ground.GroundOptions{})

	if report.Grounding != nil {
		t.Errorf("expected no grounding entries, got %v", report.Grounding)
	}
}

func TestSummarize_DisabledIsNoOp(t *testing.T) {
	p := newParser()
	report := p.ParseWithValidation("release.txt", sampleRelease)

	p.Summarize(context.Background(), report)

	if report.LLM != nil {
		t.Errorf("summary must stay off without a provider, got %+v", report.LLM)
	}
}

func TestRenderReport_WritesArtifacts(t *testing.T) {
	p := newParser()
	report := p.ParseWithValidation("release.txt", sampleRelease)

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
		t.Fatalf("render report: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON artifact: %v", err)
	}
	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON artifact does not parse: %v", err)
	}
	if decoded.Release == nil || decoded.Release.Headline != report.Release.Headline {
		t.Error("JSON artifact lost the parsed release")
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown artifact: %v", err)
	}
	for _, want := range []string{
		"# Smith Campaign Announces Comprehensive Jobs Plan",
		"## Quality:",
		"## Quotes",
		"Jane Smith",
		"never truth",
	} {
		if !strings.Contains(string(md), want) {
			t.Errorf("Markdown artifact missing %q", want)
		}
	}
}

func TestRenderMarkdown_RejectedReport(t *testing.T) {
	p := newParser()
	report := p.ParseWithValidation("-", "Hi.")

	dir := t.TempDir()
	mdPath := filepath.Join(dir, "rejected.md")

	if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
		t.Fatalf("render markdown: %v", err)
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !strings.Contains(string(md), "## Rejected") {
		t.Errorf("rejected report must render the rejection section: %s", md)
	}
}
