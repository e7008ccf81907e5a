// Package http provides the outbound HTTP client used for portal requests.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient creates an HTTP client configured for external portal calls.
//
// Settings:
//   - Proxy: honours HTTP_PROXY and friends
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns: 100 idle connections kept for reuse
//   - TLSHandshakeTimeout: upper bound on the HTTPS handshake
//   - Client.Timeout: whole-request timeout supplied by the caller
//
// http.DefaultClient has no timeout, so callers always go through this constructor.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
