// ABOUTME: Hand-rolled mocks for the discovery service tests
// ABOUTME: In-memory stand-ins for transport, logger and credentials

package discovery

import (
	"context"
	"io"
)

type capturedRequest struct {
	url     string
	body    []byte
	headers map[string]string
}

type mockHTTPClient struct {
	postFunc func(ctx context.Context, url string, body io.Reader, headers map[string]string) ([]byte, error)
	requests []capturedRequest
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) ([]byte, error) {
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader, headers map[string]string) ([]byte, error) {
	var data []byte
	if body != nil {
		data, _ = io.ReadAll(body)
	}
	m.requests = append(m.requests, capturedRequest{url: url, body: data, headers: headers})
	if m.postFunc != nil {
		return m.postFunc(ctx, url, body, headers)
	}
	return []byte(`{"success":true,"rows":[]}`), nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockCredentials struct {
	token string
}

func (m *mockCredentials) Token(ctx context.Context) string { return m.token }
