package ground

import (
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// GenerateQueries builds search query strings from a claim's statement,
// numeric tokens and attribution source. Any claim with a non-empty
// statement yields at least one query.
func (g *Grounder) GenerateQueries(claim model.FactualClaim) []string {
	var queries []string

	statement := strings.TrimSpace(claim.Statement)
	if statement == "" {
		return nil
	}

	queries = append(queries, trimQuery(statement, 12))

	if len(claim.NumericClaims) > 0 {
		parts := make([]string, 0, len(claim.NumericClaims)+1)
		for _, nc := range claim.NumericClaims {
			parts = append(parts, nc.Text)
		}
		if claim.Comparative != nil && len(claim.Comparative.Metrics) > 0 {
			parts = append(parts, claim.Comparative.Metrics...)
		}
		q := strings.Join(parts, " ")
		if q != "" && q != queries[0] {
			queries = append(queries, q)
		}
	}

	// Known attribution phrases map to a search-domain hint so the most
	// authoritative source for the claim is searched directly.
	if claim.AttributionSource != "" {
		key := strings.ToLower(strings.TrimSpace(claim.AttributionSource))
		if hint, ok := g.cfg.SourceHints[key]; ok {
			queries = append(queries, trimQuery(statement, 8)+" "+hint)
		} else {
			queries = append(queries, trimQuery(statement, 8)+" "+claim.AttributionSource)
		}
	}

	return queries
}

// trimQuery keeps the first n words of a statement, stripped of quote
// marks and trailing punctuation.
func trimQuery(statement string, n int) string {
	cleaned := strings.NewReplacer(`"`, "", "“", "", "”", "").Replace(statement)
	words := strings.Fields(cleaned)
	if len(words) > n {
		words = words[:n]
	}
	return strings.TrimRight(strings.Join(words, " "), ".,;:!?")
}
