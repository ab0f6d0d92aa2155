// Package bdl is the BallDontLie NBA API client used by the ingestion layer
// to pull official games, standings, and the active roster.
//
// BDL uses cursor-based pagination and Authorization header auth. Requests
// go through a token-bucket limiter so bulk syncs stay inside the plan's
// per-minute quota.
package bdl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.balldontlie.io/v1"

// client is the shared rate-limited HTTP client for all BDL endpoints.
type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func newClient(apiKey string, requestsPerMinute int, logger *slog.Logger) *client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// page is the common BDL response wrapper.
type page struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
	} `json:"meta"`
}

// get performs a rate-limited GET request against a BDL endpoint.
func (c *client) get(ctx context.Context, path string, params url.Values) (*page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("BDL %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var result page
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

// getAll iterates a cursor-paginated endpoint, calling fn once per page.
func (c *client) getAll(ctx context.Context, path string, params url.Values, fn func(json.RawMessage) error) error {
	if params == nil {
		params = url.Values{}
	}
	params.Set("per_page", "100")

	for {
		resp, err := c.get(ctx, path, params)
		if err != nil {
			return err
		}
		if err := fn(resp.Data); err != nil {
			return err
		}
		if resp.Meta.NextCursor == nil {
			return nil
		}
		params.Set("cursor", fmt.Sprintf("%d", *resp.Meta.NextCursor))
	}
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
