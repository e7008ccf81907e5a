// Package ecourts resolves CNR numbers against the eCourts India portal.
package ecourts

import (
	"time"

	"ecourts_backend/internal/platform/config"
)

// DefaultReferer is sent with every portal request.
const DefaultReferer = "https://services.ecourts.gov.in/ecourtindia_v6/"

// Config holds configuration for the portal client.
type Config struct {
	Endpoints []string      // Candidate case-status endpoints, tried in order
	StatusURL string        // Page probed by Available
	UserAgent string        // Browser User-Agent sent with requests
	Referer   string        // Referer header
	Timeout   time.Duration // Per-request timeout
}

// ConfigFrom converts the application configuration section.
func ConfigFrom(c config.ECourts) Config {
	return Config{
		Endpoints: c.Endpoints,
		StatusURL: c.StatusURL,
		UserAgent: c.UserAgent,
		Referer:   DefaultReferer,
		Timeout:   c.Timeout,
	}
}
