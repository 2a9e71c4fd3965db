package havapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	config "github.com/govargas/bada/configs"
	"github.com/govargas/bada/internal/core/domain/beach"
	"github.com/govargas/bada/internal/core/ports"
)

// Client implements ports.BathingWaterClient against the two HaV API
// generations. All calls go through one http.Client whose timeout bounds
// every request; an unbounded upstream wait is treated as a defect.
type Client struct {
	baseURL   string
	v2BaseURL string
	userAgent string
	http      *http.Client
	logger    *logrus.Logger
}

func NewClient(cfg *config.HavConfig, logger *logrus.Logger) ports.BathingWaterClient {
	return &Client{
		baseURL:   cfg.BaseURL,
		v2BaseURL: cfg.V2BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

// ListBathingWaters fetches the full v1 feature listing.
func (c *Client) ListBathingWaters(ctx context.Context) (json.RawMessage, error) {
	return c.getV1(ctx, "/feature/?format=json")
}

// GetBathingWater fetches the v1 detail payload for one site.
func (c *Client) GetBathingWater(ctx context.Context, id string) (json.RawMessage, error) {
	return c.getV1(ctx, "/detail/"+url.PathEscape(id))
}

// GetMonitoringResults fetches the v2 sample results for one site.
func (c *Client) GetMonitoringResults(ctx context.Context, id string) ([]beach.MonitoringResult, error) {
	if c.v2BaseURL == "" {
		return nil, fmt.Errorf("v2 base URL not configured")
	}

	body, err := c.get(ctx, "v2", c.v2BaseURL+"/bathing-waters/"+url.PathEscape(id)+"/results", false)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Results []beach.MonitoringResult `json:"results"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode v2 results: %w", err)
	}
	return payload.Results, nil
}

func (c *Client) getV1(ctx context.Context, path string) (json.RawMessage, error) {
	return c.get(ctx, "v1", c.baseURL+path, true)
}

func (c *Client) get(ctx context.Context, source, fullURL string, withUserAgent bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", source, err)
	}
	req.Header.Set("Accept", "application/json")
	if withUserAgent {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// unreachable and non-2xx share the same gateway-class signal
		return nil, &ports.UpstreamError{Source: source, Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", source, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.logger != nil {
			c.logger.WithFields(logrus.Fields{"source": source, "url": fullURL, "status": resp.StatusCode}).Warn("upstream returned non-success status")
		}
		return nil, &ports.UpstreamError{Source: source, Status: resp.StatusCode, Body: truncate(string(body), 256)}
	}

	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
