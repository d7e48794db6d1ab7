// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Fetches feed documents with an identifying User-Agent and bounded 5xx retries

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"bevtrends-api/core/interfaces"
)

const (
	// DefaultMaxRetries is the number of attempts made for a request
	DefaultMaxRetries = 3

	// DefaultUserAgent identifies the aggregator to feed publishers
	DefaultUserAgent = "BevTrendsBot/1.0 (+https://bevtrends.app)"

	acceptFeeds = "application/rss+xml, application/atom+xml, application/feed+json, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.8"
)

// Options configures a StandardHTTPClient
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	MaxRetries int

	// Backoff is the delay before the first retry; it doubles per attempt
	Backoff time.Duration
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	backoff    time.Duration
}

// NewStandardHTTPClient creates a new HTTP client from opts, filling defaults
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxRetries < 1 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Backoff <= 0 {
		opts.Backoff = 100 * time.Millisecond
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent:  opts.UserAgent,
		maxRetries: opts.MaxRetries,
		backoff:    opts.Backoff,
	}
}

// Get performs an HTTP GET request, retrying transport errors and 5xx
// responses with exponential backoff. 4xx responses are returned as-is.
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", acceptFeeds)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoff * time.Duration(1<<(attempt-1))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}

		if resp.StatusCode < 500 {
			break
		}

		// Keep the final 5xx response so callers see the upstream status
		if attempt == c.maxRetries-1 {
			break
		}
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp.Body.Close()
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
