// Package fetch provides the polite HTTP fetcher the CLI wires into
// claim grounding. It honors robots.txt, rate-limits per domain, caches
// fetched documents, and reduces HTML pages to their visible text.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/presslens/presslens/internal/cache"
	"github.com/presslens/presslens/internal/model"
	"github.com/presslens/presslens/internal/util"
	"github.com/presslens/presslens/internal/worker"
)

// Client fetches source documents for grounding. It satisfies the
// grounding Fetcher contract.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *robotsGate
	limiter    *worker.Limiter
	store      cache.Store
}

// NewClient builds a client from configuration.
func NewClient(cfg model.HTTPConfig, cacheCfg model.CacheConfig) *Client {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.RatePerDomain, cfg.RateBurst),
		store:     cache.NewFromConfig(cacheCfg),
	}

	if cfg.RespectRobots {
		c.robots = newRobotsGate(cfg.UserAgent, cfg.Timeout)
	}
	return c
}

// Fetch returns the visible text of a URL. Cached documents skip the
// network entirely, including the robots and rate-limit checks.
func (c *Client) Fetch(ctx context.Context, rawURL string) (string, error) {
	key := cache.Key(rawURL)
	if cached, found := c.store.Get(key); found {
		return string(cached), nil
	}

	if c.robots != nil {
		allowed, crawlDelay, err := c.robots.canFetch(ctx, rawURL)
		if err != nil {
			return "", err
		}
		if !allowed {
			return "", fmt.Errorf("disallowed by robots.txt: %s", rawURL)
		}
		if err := c.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return "", err
		}
	} else if err := c.limiter.Wait(ctx, rawURL); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	if isHTML(resp.Header.Get("Content-Type"), text) {
		text = VisibleText(text)
	}

	_ = c.store.Set(key, []byte(text), 0)
	return text, nil
}

func isHTML(contentType, body string) bool {
	if strings.Contains(contentType, "text/html") || strings.Contains(contentType, "xhtml") {
		return true
	}
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html")
}

// VisibleText reduces an HTML document to the text a reader would see,
// skipping scripts, styles and embedded frames.
func VisibleText(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return htmlContent
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String())
}
