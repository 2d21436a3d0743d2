package ground

import (
	"testing"

	"github.com/presslens/presslens/internal/model"
)

func TestScoreSourceCredibility_Tiers(t *testing.T) {
	g := newGrounder()

	tests := []struct {
		name      string
		url       string
		wantTier  model.CredibilityTier
		wantScore float64
		credible  bool
	}{
		{"listed primary", "https://www.bls.gov/news.release/empsit.nr0.htm", model.TierPrimary, 0.95, true},
		{"gov fallback", "https://data.ci.springfield.il.gov/budget", model.TierPrimary, 0.95, true},
		{"listed research", "https://www.pewresearch.org/politics/2024/03/report", model.TierResearch, 0.75, true},
		{"edu fallback", "https://economics.stanford.edu/papers/123", model.TierResearch, 0.75, true},
		{"news", "https://apnews.com/article/election-2024", model.TierNews, 0.60, true},
		{"subdomain of news", "https://live.reuters.com/markets", model.TierNews, 0.60, true},
		{"unknown", "https://randomblog.example.com/post/1", model.TierUnknown, 0.20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred := g.ScoreSourceCredibility(tt.url)
			if cred.Tier != tt.wantTier {
				t.Errorf("expected tier %s, got %s", tt.wantTier, cred.Tier)
			}
			if cred.Score != tt.wantScore {
				t.Errorf("expected score %.2f, got %.2f", tt.wantScore, cred.Score)
			}
			if cred.IsCredible != tt.credible {
				t.Errorf("expected credible=%v, got %v", tt.credible, cred.IsCredible)
			}
		})
	}
}

func TestScoreSourceCredibility_OpinionPathCapsScore(t *testing.T) {
	g := newGrounder()

	cred := g.ScoreSourceCredibility("https://www.nytimes.com/opinion/2024/election.html")

	if cred.Score != 0.60 {
		t.Errorf("opinion content must cap at the news score, got %.2f", cred.Score)
	}
	if len(cred.Concerns) == 0 {
		t.Error("expected an opinion-content concern")
	}

	// The cap also pulls down higher tiers.
	cred = g.ScoreSourceCredibility("https://www.brookings.edu/blog/up-front/2024/post")
	if cred.Score != 0.60 {
		t.Errorf("blog path must cap a research source at the news score, got %.2f", cred.Score)
	}
}

func TestScoreSourceCredibility_DomainMapOverride(t *testing.T) {
	cfg := model.DefaultConfig().Grounding
	cfg.Credibility.DomainMap = map[string]string{"statehouse-news.example.org": "news"}
	g := NewGrounder(cfg)

	cred := g.ScoreSourceCredibility("https://statehouse-news.example.org/story/42")

	if cred.Tier != model.TierNews {
		t.Errorf("expected override to news, got %s", cred.Tier)
	}
	if cred.Score != 0.60 {
		t.Errorf("expected news score, got %.2f", cred.Score)
	}
}

func TestScoreSourceCredibility_UnparseableURL(t *testing.T) {
	g := newGrounder()

	cred := g.ScoreSourceCredibility("not a url at all")

	if cred.Tier != model.TierUnknown || cred.IsCredible {
		t.Errorf("unparseable URL must be unknown and not credible: %+v", cred)
	}
	if len(cred.Concerns) == 0 {
		t.Error("expected a concern for the unparseable URL")
	}
}

func TestScoreSourceCredibility_HostNormalization(t *testing.T) {
	g := newGrounder()

	cred := g.ScoreSourceCredibility("https://WWW.CENSUS.GOV:443/data/tables.html")

	if cred.Domain != "census.gov" {
		t.Errorf("expected normalized domain, got %q", cred.Domain)
	}
	if cred.Tier != model.TierPrimary {
		t.Errorf("expected primary tier, got %s", cred.Tier)
	}
}

func TestMatchesDomain(t *testing.T) {
	domains := []string{"bls.gov", "apnews.com"}

	tests := []struct {
		host string
		want bool
	}{
		{"bls.gov", true},
		{"data.bls.gov", true},
		{"apnews.com", true},
		{"notbls.gov", false},
		{"apnews.com.evil.example", false},
	}

	for _, tt := range tests {
		if got := matchesDomain(tt.host, domains); got != tt.want {
			t.Errorf("matchesDomain(%q) = %v, want %v", tt.host, got, tt.want)
		}
	}
}
