package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func requestFor(t *testing.T, url string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	return req
}

func TestNewProxyFunc_ExplicitProxies(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.internal:3128", "http://secure-proxy.internal:3128", "")

	u, err := proxy(requestFor(t, "http://example.gov/page"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy.internal:3128" {
		t.Errorf("http request must use the http proxy, got %v", u)
	}

	u, err = proxy(requestFor(t, "https://example.gov/page"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "secure-proxy.internal:3128" {
		t.Errorf("https request must use the https proxy, got %v", u)
	}
}

func TestNewProxyFunc_HTTPProxyCoversBoth(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.internal:3128", "", "")

	u, err := proxy(requestFor(t, "https://example.gov/page"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u == nil || u.Host != "proxy.internal:3128" {
		t.Errorf("https request must fall back to the http proxy, got %v", u)
	}
}

func TestNewProxyFunc_EnvironmentFallback(t *testing.T) {
	proxy := NewProxyFunc("", "", "")

	// With no explicit config the environment decides; the default test
	// environment has no proxy variables set.
	u, err := proxy(requestFor(t, "http://example.gov/page"))
	if err != nil {
		t.Fatalf("proxy func failed: %v", err)
	}
	if u != nil {
		t.Logf("environment proxy in effect: %v", u)
	}
}
