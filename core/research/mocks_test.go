// ABOUTME: Hand-rolled mocks for the research service tests
// ABOUTME: In-memory stand-ins for cache, transport, logger and credentials

package research

import (
	"context"
	"io"
	"time"
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

type mockCache struct {
	data map[string][]byte
	sets int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.data[key] = value
	m.sets++
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *mockCache) Close() error { return nil }

type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

type mockCredentials struct {
	token string
}

func (m *mockCredentials) Token(ctx context.Context) string { return m.token }
