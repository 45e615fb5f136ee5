package crossref

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the CrossRef REST API base URL.
	BaseURL = "https://api.crossref.org"

	// DefaultTimeout is the per-request HTTP timeout. Lookups are
	// single-attempt; a timeout demotes the caller to its next tier.
	DefaultTimeout = 15 * time.Second

	// RateLimit keeps requests inside the CrossRef polite pool.
	RateLimit = 2.0

	// DefaultEmail is used in the polite-pool User-Agent when the
	// operator has not configured a contact address.
	DefaultEmail = "user@example.com"
)

// Client is a rate-limited HTTP client for the CrossRef works API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	email      string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEmail sets the contact email for the polite-pool User-Agent.
func WithEmail(email string) ClientOption {
	return func(c *Client) {
		if email != "" {
			c.email = email
		}
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

// NewClient creates a new CrossRef API client. The contact email is
// taken from the RELABEL_EMAIL environment variable unless overridden
// by WithEmail.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(RateLimit), 1),
		baseURL:    BaseURL,
		email:      DefaultEmail,
	}

	if email := os.Getenv("RELABEL_EMAIL"); email != "" {
		c.email = email
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Work fetches the work record registered for a DOI. A single attempt
// is made; any failure is returned as-is for the caller to treat as a
// failed tier.
func (c *Client) Work(ctx context.Context, doi string) (*Work, error) {
	if doi == "" {
		return nil, fmt.Errorf("%w: empty DOI", ErrInvalidResponse)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	reqURL := c.baseURL + "/works/" + url.PathEscape(doi)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("relabel/1.0 (mailto:%s)", c.email))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetworkError, err)
	}
	defer resp.Body.Close()

	if err := checkHTTPErrors(resp, doi); err != nil {
		return nil, err
	}

	var env worksEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if env.Status != "ok" {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidResponse, env.Status)
	}

	return &env.Message, nil
}

// checkHTTPErrors returns an error if the response indicates a problem.
func checkHTTPErrors(resp *http.Response, doi string) error {
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, doi)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w: status %d", ErrRateLimited, resp.StatusCode)
	case resp.StatusCode >= 400:
		return &APIError{StatusCode: resp.StatusCode, DOI: doi}
	}
	return nil
}
