package fetch

import (
	"context"
	"net/url"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// ListSearcher satisfies the grounding Searcher contract over a fixed
// list of candidate source URLs, for runs without a search backend. A
// "site:" operator in the query narrows the list to that domain; other
// query terms are ignored.
type ListSearcher struct {
	urls []string
}

// NewListSearcher creates a searcher over the given URLs.
func NewListSearcher(urls []string) *ListSearcher {
	return &ListSearcher{urls: urls}
}

// Search returns the candidate URLs, filtered by any site: operator.
func (s *ListSearcher) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site := siteOperator(query)

	var results []model.SearchResult
	for _, raw := range s.urls {
		if site != "" && !matchesSite(raw, site) {
			continue
		}
		results = append(results, model.SearchResult{URL: raw})
	}
	return results, nil
}

func siteOperator(query string) string {
	for _, field := range strings.Fields(query) {
		if strings.HasPrefix(field, "site:") {
			return strings.TrimPrefix(field, "site:")
		}
	}
	return ""
}

func matchesSite(rawURL, site string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(parsed.Hostname(), "www.")
	return host == site || strings.HasSuffix(host, "."+site)
}
