package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	initialBackoff    = 2 * time.Second
	maxFeedBytes      = 32 << 20
)

// FeedClient downloads client lists from a remote JSON feed
type FeedClient struct {
	client     *http.Client
	maxRetries int
	backoff    time.Duration
	maxBytes   int64
}

// FeedOption configures a FeedClient
type FeedOption func(*FeedClient)

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) FeedOption {
	return func(c *FeedClient) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithMaxRetries sets the number of attempts made before giving up
func WithMaxRetries(n int) FeedOption {
	return func(c *FeedClient) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

// WithInitialBackoff sets the delay before the first retry; it doubles after each attempt
func WithInitialBackoff(d time.Duration) FeedOption {
	return func(c *FeedClient) {
		c.backoff = d
	}
}

// WithMaxBodySize caps the size of a feed document
func WithMaxBodySize(n int64) FeedOption {
	return func(c *FeedClient) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// NewFeedClient creates a new feed client
func NewFeedClient(opts ...FeedOption) *FeedClient {
	c := &FeedClient{
		client: &http.Client{
			Timeout: defaultTimeout,
		},
		maxRetries: defaultMaxRetries,
		backoff:    initialBackoff,
		maxBytes:   maxFeedBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchClients retrieves the raw client list document from url
func (c *FeedClient) FetchClients(ctx context.Context, url string) ([]byte, error) {
	body, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", err)
	}
	return body, nil
}

// fetchWithRetry performs an HTTP GET with exponential backoff retry
func (c *FeedClient) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	backoff := c.backoff

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
				backoff *= 2
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
		resp.Body.Close()

		if err != nil {
			lastErr = err
			continue
		}
		if int64(len(body)) > c.maxBytes {
			return nil, fmt.Errorf("feed document exceeds %d bytes", c.maxBytes)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return body, nil
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", c.maxRetries, lastErr)
}
