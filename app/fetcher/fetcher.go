package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/brasil-epg/grabber/app/config"
)

// TransportError wraps a network or HTTP failure for one request. Callers
// catch it per iteration, log it and move on.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client fetches one (service, channel-or-batch, day) payload at a time.
type Client struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration

	// Now is the reference clock for URL templating; overridable in tests.
	Now func() time.Time
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  userAgent,
		timeout:    timeout,
		Now:        time.Now,
	}
}

// Fetch builds the templated URL for the given day offset and channel
// selector, executes the request with the configured headers and decodes
// the JSON payload. Numbers are preserved as json.Number so epoch values
// keep their magnitude.
func (c *Client) Fetch(ctx context.Context, svc *config.Service, day int, channelSelector string) (any, error) {
	url := BuildURL(svc.APIURL, day, channelSelector, c.Now())

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	req.Header.Set("User-Agent", c.userAgent)
	for key, value := range svc.Headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}

	return Decode(body)
}

// Decode parses a JSON payload preserving number precision.
func Decode(data []byte) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var payload any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return payload, nil
}
