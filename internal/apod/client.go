package apod

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

	"github.com/five82/apodwall/internal/faults"
)

// Fetcher retrieves today's APOD record. Implemented by *Client and by test fakes.
type Fetcher interface {
	FetchToday(ctx context.Context, apiKey string) (Record, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the APOD HTTP API.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	DefaultEndpoint  = "https://api.nasa.gov/planetary/apod"
	DefaultUserAgent = "apodwall/0.1"
	requestTimeout   = 30 * time.Second
	maxBodyBytes     = 1 << 20
)

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for endpoint, or DefaultEndpoint when empty.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	base, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  base,
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchToday performs a single request for today's picture. There is no retry;
// failures surface as faults.ErrNetwork, faults.ErrAPI or faults.ErrParse.
func (c *Client) FetchToday(ctx context.Context, apiKey string) (Record, error) {
	if c == nil {
		return Record{}, fmt.Errorf("client is nil")
	}

	reqURL := *c.endpoint
	values := reqURL.Query()
	values.Set("api_key", apiKey)
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Record{}, faults.Wrap(faults.ErrNetwork, "apod", "create request", "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, faults.Wrap(faults.ErrNetwork, "apod", "execute request", "", redactURL(err))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Record{}, faults.Wrap(faults.ErrNetwork, "apod", "read response", "", err)
	}

	if resp.StatusCode >= 400 {
		msg := fmt.Sprintf("returned status %d", resp.StatusCode)
		var apiErr apiErrorBody
		if json.Unmarshal(body, &apiErr) == nil {
			if detail := apiErr.message(); detail != "" {
				msg += ": " + detail
			}
		}
		return Record{}, faults.Wrap(faults.ErrAPI, "apod", "", msg, nil)
	}

	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return Record{}, faults.Wrap(faults.ErrParse, "apod", "decode response", "", err)
	}
	record.normalize()
	if missing := record.missingFields(); len(missing) > 0 {
		return Record{}, faults.Wrap(faults.ErrParse, "apod", "decode response", "missing "+strings.Join(missing, ", "), nil)
	}
	return record, nil
}

// Endpoint returns the configured endpoint. The api key is only added per request.
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse apod endpoint %q: %w", endpoint, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse apod endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}

// redactURL drops the request URL, which carries the API key, from transport errors.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
