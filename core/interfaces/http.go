// ABOUTME: HTTP client interface for outbound provider calls
// ABOUTME: Abstracts the transport so services can be tested with mocks

package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for outbound HTTP operations
type HTTPClient interface {
	// Get performs a GET request and returns the response body
	Get(ctx context.Context, url string) ([]byte, error)

	// Post performs a POST request with the given body and extra headers,
	// returning the response body. A nil headers map sends only defaults.
	Post(ctx context.Context, url string, body io.Reader, headers map[string]string) ([]byte, error)
}
