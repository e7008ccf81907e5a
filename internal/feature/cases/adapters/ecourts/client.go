package ecourts

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ecourts_backend/internal/feature/cases/adapters/ecourts/dto"
	"ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/cases/usecase"
)

const (
	// statusTimeout bounds the availability probe.
	statusTimeout = 10 * time.Second
	// maxBodyBytes caps how much of a portal page is read.
	maxBodyBytes = 4 << 20
	// retrievedAtLayout formats CaseInfo.RetrievedAt.
	retrievedAtLayout = "02/01/2006 15:04:05"
)

// Client is the CaseLookup backed by the eCourts portal.
// Lookups try the known-case table, then each configured endpoint, then fall back to a placeholder.
type Client struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// Client must satisfy usecase.CaseLookup.
var _ usecase.CaseLookup = (*Client)(nil)

// NewClient creates a Client using client for all portal requests.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client, now: time.Now}
}

// Lookup resolves cnr. It fails only for an empty CNR; portal failures yield a placeholder result.
func (c *Client) Lookup(ctx context.Context, cnr string) (entity.LookupResult, error) {
	cnr = usecase.NormalizeCNR(cnr)
	if cnr == "" {
		return entity.LookupResult{}, fmt.Errorf("%w: CNR number is required", usecase.ErrInvalidInput)
	}
	retrievedAt := c.now().Format(retrievedAtLayout)

	if info, ok := knownCase(cnr); ok {
		info.RetrievedAt = retrievedAt
		return entity.RealData(info), nil
	}

	if info, ok := c.fetch(ctx, cnr); ok {
		info.RetrievedAt = retrievedAt
		slog.Info("case fetched from portal", "cnr", cnr)
		return entity.RealData(info), nil
	}

	info := placeholderInfo(cnr)
	info.RetrievedAt = retrievedAt
	return entity.Placeholder(info), nil
}

// fetch tries every endpoint once and returns the first parsed result.
func (c *Client) fetch(ctx context.Context, cnr string) (entity.CaseInfo, bool) {
	for _, endpoint := range c.cfg.Endpoints {
		if ctx.Err() != nil {
			return entity.CaseInfo{}, false
		}
		info, ok, err := c.fetchFrom(ctx, endpoint, cnr)
		if err != nil {
			slog.Debug("portal endpoint failed", "url", endpoint, "cnr", cnr, "error", err)
			continue
		}
		if ok {
			return info, true
		}
	}
	return entity.CaseInfo{}, false
}

// fetchFrom loads the search form at endpoint, then posts the CNR to it.
func (c *Client) fetchFrom(ctx context.Context, endpoint, cnr string) (entity.CaseInfo, bool, error) {
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil); err != nil {
		return entity.CaseInfo{}, false, err
	}

	form := dto.CNRSearchForm{CNR: cnr}
	body, err := c.do(ctx, http.MethodPost, endpoint, strings.NewReader(form.Values().Encode()))
	if err != nil {
		return entity.CaseInfo{}, false, err
	}
	return parseCaseHTML(body, cnr)
}

// do sends one request and returns the body of a 200 response.
func (c *Client) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ecourts %s %s: http %d", method, url, res.StatusCode)
	}
	return io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	if c.cfg.Referer != "" {
		req.Header.Set("Referer", c.cfg.Referer)
	}
}

// Available probes the portal home page. A probe that cannot complete counts as available
// so that searches still run and fall back to placeholder data.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.StatusURL, nil)
	if err != nil {
		return true
	}
	c.setHeaders(req)

	res, err := c.client.Do(req)
	if err != nil {
		slog.Debug("portal status probe failed", "error", err)
		return true
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()
	return res.StatusCode == http.StatusOK
}
