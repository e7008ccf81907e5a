// Package di provides factories that assemble application components from configuration.
package di

import (
	"ecourts_backend/internal/feature/cases/adapters/ecourts"
	"ecourts_backend/internal/platform/config"
	infrahttp "ecourts_backend/internal/platform/http"
)

// NewLookup creates the eCourts portal client with its own HTTP client.
func NewLookup(cfg config.ECourts) *ecourts.Client {
	c := ecourts.ConfigFrom(cfg)
	return ecourts.NewClient(c, infrahttp.NewHTTPClient(c.Timeout))
}
