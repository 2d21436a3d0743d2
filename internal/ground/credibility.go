package ground

import (
	"net/url"
	"strings"

	"github.com/presslens/presslens/internal/model"
)

// ScoreSourceCredibility matches a URL's domain against the fixed tier
// table. Government and statistical agencies score highest; unmatched
// domains score lowest and are never approved for use.
func (g *Grounder) ScoreSourceCredibility(rawURL string) model.SourceCredibility {
	cfg := g.cfg.Credibility

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return model.SourceCredibility{
			Domain:     rawURL,
			Tier:       model.TierUnknown,
			Score:      cfg.UnknownScore,
			IsCredible: false,
			Concerns:   []string{"URL could not be parsed"},
		}
	}

	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")

	cred := model.SourceCredibility{Domain: host}

	switch {
	case tierOverride(cfg.DomainMap, host) != "":
		cred.Tier = tierOverride(cfg.DomainMap, host)
		cred.Score = g.tierScore(cred.Tier)
	case matchesDomain(host, cfg.PrimaryDomains) || strings.HasSuffix(host, ".gov"):
		cred.Tier = model.TierPrimary
		cred.Score = cfg.PrimaryScore
	case matchesDomain(host, cfg.ResearchDomains) || strings.HasSuffix(host, ".edu"):
		cred.Tier = model.TierResearch
		cred.Score = cfg.ResearchScore
	case matchesDomain(host, cfg.NewsDomains):
		cred.Tier = model.TierNews
		cred.Score = cfg.NewsScore
	default:
		cred.Tier = model.TierUnknown
		cred.Score = cfg.UnknownScore
		cred.Concerns = append(cred.Concerns, "domain not in any recognized tier")
	}

	path := strings.ToLower(parsed.Path)
	if strings.Contains(path, "/opinion") || strings.Contains(path, "/blog") {
		cred.Concerns = append(cred.Concerns, "URL points at opinion or blog content")
		if cred.Score > cfg.NewsScore {
			cred.Score = cfg.NewsScore
		}
	}

	cred.IsCredible = cred.Score >= cfg.CredibleFloor
	return cred
}

func (g *Grounder) tierScore(tier model.CredibilityTier) float64 {
	cfg := g.cfg.Credibility
	switch tier {
	case model.TierPrimary:
		return cfg.PrimaryScore
	case model.TierResearch:
		return cfg.ResearchScore
	case model.TierNews:
		return cfg.NewsScore
	default:
		return cfg.UnknownScore
	}
}

func tierOverride(domainMap map[string]string, host string) model.CredibilityTier {
	if domainMap == nil {
		return ""
	}
	tier, ok := domainMap[host]
	if !ok {
		return ""
	}
	switch strings.ToLower(tier) {
	case "primary":
		return model.TierPrimary
	case "research":
		return model.TierResearch
	case "news":
		return model.TierNews
	default:
		return model.TierUnknown
	}
}

// matchesDomain reports whether host equals or is a subdomain of any
// entry in the list.
func matchesDomain(host string, domains []string) bool {
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}
