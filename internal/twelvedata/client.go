// Package twelvedata provides a client for the Twelve Data quote API.
// It issues one batched request for all watched symbols and surfaces the
// provider's "feature restricted" payload as a recognized failure mode
// rather than a crash condition.
package twelvedata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ndewijer/Finance-Dashboard-Backend/internal/apperrors"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.twelvedata.com"

	// DefaultTimeout bounds a single quote request.
	DefaultTimeout = 15 * time.Second
)

var errMalformedResponse = errors.New("malformed quote response")

// Client fetches current quotes from the Twelve Data API. The API key is
// passed as a query parameter on every request; when a key source is
// configured it is consulted per request, so a key updated at runtime takes
// effect on the next fetch.
type Client struct {
	baseURL    string
	apiKey     string
	keySource  func() string
	httpClient *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithKeySource installs a callback consulted on every request for the API
// key. An empty result falls back to the key given at construction.
func WithKeySource(source func() string) Option {
	return func(c *Client) {
		c.keySource = source
	}
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Twelve Data client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// currentKey resolves the API key for one request, preferring the key source
// over the construction-time key.
func (c *Client) currentKey() string {
	if c.keySource != nil {
		if key := c.keySource(); key != "" {
			return key
		}
	}
	return c.apiKey
}

// Quotes fetches current quote data for all given symbols in one request.
//
// Failure modes, all reported as errors for the caller's fallback policy:
//   - transport failure or context cancellation
//   - non-2xx HTTP status
//   - a body that fails to parse
//   - the provider's plan-restriction payload (apperrors.ErrFeatureRestricted)
//
// A successful response may still contain per-symbol error entries; those are
// returned as-is and classified by the caller via QuoteEntry.WellFormed.
func (c *Client) Quotes(ctx context.Context, symbols []string) (BatchResponse, error) {
	if len(symbols) == 0 {
		return BatchResponse{}, nil
	}

	q := url.Values{}
	q.Set("symbol", strings.Join(symbols, ","))
	q.Set("apikey", c.currentKey())
	endpoint := fmt.Sprintf("%s/quote?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", apperrors.ErrFeedUnavailable, resp.StatusCode)
	}

	// The provider signals plan restrictions with a 2xx status and a
	// top-level error payload in place of quote data.
	var ae apiError
	if err := json.Unmarshal(body, &ae); err == nil && ae.Status == "error" {
		if ae.Code == 403 || ae.Code == 401 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrFeatureRestricted, ae.Message)
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrFeedUnavailable, ae.Message)
	}

	batch, err := decodeBatch(body, symbols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrFeedUnavailable, err)
	}
	return batch, nil
}
