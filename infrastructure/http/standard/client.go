// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Non-2xx responses surface as typed remote service errors

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "keyword-intel-api/core/errors"
)

const (
	maxRetries   = 3
	userAgent    = "KeywordIntelAPI/1.0"
	maxErrorBody = 512
)

// StandardHTTPClient implements the HTTPClient interface using the standard
// library transport
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout
func NewStandardHTTPClient(timeout time.Duration) *StandardHTTPClient {
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get performs an HTTP GET request with exponential backoff on 5xx responses
func (c *StandardHTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			lastErr = err
			resp = nil
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 {
			break
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}
	return readBody(resp)
}

// Post performs an HTTP POST request. POST calls are not retried: the
// collaborators are not idempotent and a fresh call is always user-initiated.
func (c *StandardHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}

// readBody drains the response and maps non-2xx statuses to typed errors
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(data)
		if len(msg) > maxErrorBody {
			msg = msg[:maxErrorBody]
		}
		return nil, &apperrors.RemoteServiceError{
			StatusCode: resp.StatusCode,
			Message:    msg,
			Service:    resp.Request.URL.Host,
		}
	}
	return data, nil
}
