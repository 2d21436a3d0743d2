// Package util holds small shared helpers for HTTP plumbing.
package util

import (
	"net/http"
	"net/url"
)

// NewProxyFunc builds an http.Transport proxy function. Explicit proxy
// URLs win over environment variables; with none configured the
// environment decides.
func NewProxyFunc(httpProxy, httpsProxy, noProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
