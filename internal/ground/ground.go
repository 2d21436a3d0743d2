// Package ground scaffolds claim verification. It generates search
// queries, scores candidate source credibility, and checks whether
// fetched content supports a claim. All network I/O happens through
// caller-supplied Searcher and Fetcher implementations; the package
// itself contains no transport code.
package ground

import (
	"context"
	"sync"

	"github.com/presslens/presslens/internal/model"
)

// Searcher is the injected search capability.
type Searcher interface {
	Search(ctx context.Context, query string) ([]model.SearchResult, error)
}

// Fetcher is the injected fetch capability. It returns the text content
// of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Grounder orchestrates query generation, search, credibility scoring and
// support checking for claims.
type Grounder struct {
	cfg model.GroundingConfig
}

// NewGrounder creates a grounder with the given configuration.
func NewGrounder(cfg model.GroundingConfig) *Grounder {
	return &Grounder{cfg: cfg}
}

// GroundOptions carries the injected callbacks and per-call limits.
type GroundOptions struct {
	Searcher   Searcher
	Fetcher    Fetcher
	MaxResults int // per-query results to evaluate; 0 uses the configured default
}

// GroundClaim runs the full scaffold for one claim: queries are generated
// and searched, each result is fetched, credibility-scored and support-
// checked. Per-attempt failures are recorded and never abort remaining
// attempts; the result distinguishes "verified" from "attempted but
// inconclusive".
func (g *Grounder) GroundClaim(ctx context.Context, claim model.FactualClaim, opts GroundOptions) model.VerificationResult {
	result := model.VerificationResult{AllAttempts: []model.GroundingAttempt{}}

	if opts.Searcher == nil || opts.Fetcher == nil {
		return result
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = g.cfg.MaxResults
	}

	if g.cfg.ClaimBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.ClaimBudget)
		defer cancel()
	}

	var best *model.GroundingAttempt

	for _, query := range g.GenerateQueries(claim) {
		if ctx.Err() != nil {
			break
		}

		results, err := opts.Searcher.Search(ctx, query)
		if err != nil {
			result.AllAttempts = append(result.AllAttempts, model.GroundingAttempt{
				Query: query,
				Error: "search: " + err.Error(),
			})
			continue
		}

		for i, sr := range results {
			if i >= maxResults || ctx.Err() != nil {
				break
			}
			attempt := g.attemptResult(ctx, claim, query, sr.URL, opts.Fetcher)
			result.AllAttempts = append(result.AllAttempts, attempt)
			if better(&attempt, best) {
				copied := attempt
				best = &copied
			}
		}
	}

	if best != nil && best.Support != nil {
		result.Verified = best.Support.Supported && best.Credibility.IsCredible
		result.Confidence = best.Support.Confidence * best.Credibility.Score
		result.SourceURL = best.URL
		cred := best.Credibility
		result.SourceCredibility = &cred
		result.Excerpt = best.Support.Excerpt
	}

	return result
}

// attemptResult evaluates one search hit under the per-fetch timeout.
func (g *Grounder) attemptResult(ctx context.Context, claim model.FactualClaim, query, url string, fetcher Fetcher) model.GroundingAttempt {
	attempt := model.GroundingAttempt{
		Query:       query,
		URL:         url,
		Credibility: g.ScoreSourceCredibility(url),
	}

	fetchCtx := ctx
	if g.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, g.cfg.FetchTimeout)
		defer cancel()
	}

	content, err := fetcher.Fetch(fetchCtx, url)
	if err != nil {
		attempt.Error = "fetch: " + err.Error()
		return attempt
	}

	support := g.SupportsClaim(claim, content)
	attempt.Support = &support
	return attempt
}

// better ranks attempts: supported beats unsupported, then credibility-
// weighted confidence decides.
func better(candidate, current *model.GroundingAttempt) bool {
	if candidate.Support == nil {
		return false
	}
	if current == nil || current.Support == nil {
		return true
	}
	if candidate.Support.Supported != current.Support.Supported {
		return candidate.Support.Supported
	}
	return candidate.Support.Confidence*candidate.Credibility.Score >
		current.Support.Confidence*current.Credibility.Score
}

// GroundAll grounds independent claims concurrently, bounded by workers.
// Attempts within one claim stay sequential.
func (g *Grounder) GroundAll(ctx context.Context, claims []model.FactualClaim, opts GroundOptions, workers int) []model.VerificationResult {
	if workers <= 0 {
		workers = 1
	}

	results := make([]model.VerificationResult, len(claims))
	semaphore := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, claim := range claims {
		wg.Add(1)
		go func(idx int, c model.FactualClaim) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = model.VerificationResult{AllAttempts: []model.GroundingAttempt{}}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = g.GroundClaim(ctx, c, opts)
		}(i, claim)
	}

	wg.Wait()
	return results
}
