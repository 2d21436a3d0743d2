package fetch

import (
	"context"
	"testing"
)

func TestListSearcher_ReturnsAllWithoutOperator(t *testing.T) {
	s := NewListSearcher([]string{
		"https://www.bls.gov/news.release/empsit.nr0.htm",
		"https://apnews.com/article/jobs-report",
	})

	results, err := s.Search(context.Background(), "unemployment rate last month")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected both URLs, got %d", len(results))
	}
}

func TestListSearcher_SiteOperatorFilters(t *testing.T) {
	s := NewListSearcher([]string{
		"https://www.bls.gov/news.release/empsit.nr0.htm",
		"https://data.bls.gov/timeseries/LNS14000000",
		"https://apnews.com/article/jobs-report",
	})

	results, err := s.Search(context.Background(), "unemployment rate site:bls.gov")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 bls.gov results, got %d: %v", len(results), results)
	}
	for _, r := range results {
		if !matchesSite(r.URL, "bls.gov") {
			t.Errorf("foreign URL leaked through site filter: %s", r.URL)
		}
	}
}

func TestListSearcher_SiteOperatorNoMatches(t *testing.T) {
	s := NewListSearcher([]string{"https://apnews.com/article/jobs-report"})

	results, err := s.Search(context.Background(), "site:cdc.gov flu numbers")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %v", results)
	}
}

func TestListSearcher_CancelledContext(t *testing.T) {
	s := NewListSearcher([]string{"https://apnews.com/article"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Search(ctx, "anything"); err == nil {
		t.Error("cancelled context must fail the search")
	}
}

func TestMatchesSite(t *testing.T) {
	tests := []struct {
		url  string
		site string
		want bool
	}{
		{"https://www.bls.gov/page", "bls.gov", true},
		{"https://data.bls.gov/series", "bls.gov", true},
		{"https://bls.gov.evil.example/page", "bls.gov", false},
		{"https://notbls.gov/page", "bls.gov", false},
	}

	for _, tt := range tests {
		if got := matchesSite(tt.url, tt.site); got != tt.want {
			t.Errorf("matchesSite(%q, %q) = %v, want %v", tt.url, tt.site, got, tt.want)
		}
	}
}
