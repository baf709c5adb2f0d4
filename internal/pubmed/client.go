// Package pubmed provides a client for the NCBI Literature Citation
// Exporter API, which resolves PubMed identifiers to CSL citation records.
package pubmed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"pmbib/internal/csl"
)

const (
	// BaseURL is the Citation Exporter endpoint for PubMed records.
	BaseURL = "https://api.ncbi.nlm.nih.gov/lit/ctxp/v1/pubmed/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is 3 requests per second, the NCBI limit for
	// clients without an API key.
	DefaultRateLimit = 3.0

	// KeyedRateLimit is 10 requests per second, the NCBI limit for
	// clients with an API key.
	KeyedRateLimit = 10.0
)

// Client is a rate-limited HTTP client for the Citation Exporter API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	tool       string
	email      string
	baseURL    string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the NCBI API key, which raises the allowed request rate.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTool sets the tool name sent to NCBI, per their usage guidelines.
func WithTool(tool string) ClientOption {
	return func(c *Client) {
		c.tool = tool
	}
}

// WithEmail sets the contact email sent to NCBI, per their usage guidelines.
func WithEmail(email string) ClientOption {
	return func(c *Client) {
		c.email = email
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a new Citation Exporter client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    BaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	limit := DefaultRateLimit
	if c.apiKey != "" {
		limit = KeyedRateLimit
	}
	c.limiter = rate.NewLimiter(rate.Limit(limit), 1)

	return c
}

// ctxpStatus is the error envelope the Citation Exporter returns for
// unknown identifiers.
type ctxpStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Get fetches the CSL record for a PMID. Unknown identifiers return
// ErrNotFound, whether signaled by an HTTP 404 or by an error-status body.
func (c *Client) Get(ctx context.Context, pmid string) (*csl.Record, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	q := u.Query()
	q.Set("format", "csl")
	q.Set("id", pmid)
	if c.apiKey != "" {
		q.Set("api_key", c.apiKey)
	}
	if c.tool != "" {
		q.Set("tool", c.tool)
	}
	if c.email != "" {
		q.Set("email", c.email)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, pmid); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrInvalidResponse, err)
	}

	var status ctxpStatus
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if status.Status == "error" {
		return nil, fmt.Errorf("%w: PMID %s", ErrNotFound, pmid)
	}

	var rec csl.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("%w: parsing record: %v", ErrInvalidResponse, err)
	}

	return &rec, nil
}

// checkHTTPErrors returns an error if the HTTP response indicates a problem.
func checkHTTPErrors(resp *http.Response, pmid string) error {
	switch {
	case resp.StatusCode == 404:
		return fmt.Errorf("%w: PMID %s", ErrNotFound, pmid)
	case resp.StatusCode == 429:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
			PMID:       pmid,
		}
	}
	return nil
}
