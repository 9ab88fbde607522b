// ABOUTME: Hand-rolled mocks for the recheck service tests
// ABOUTME: In-memory job storage, transport, logger and credentials

package recheck

import (
	"context"
	"io"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

type mockJobStorage struct {
	jobs map[string]domain.RankJob
}

func newMockJobStorage() *mockJobStorage {
	return &mockJobStorage{jobs: make(map[string]domain.RankJob)}
}

func (m *mockJobStorage) Create(ctx context.Context, job domain.RankJob) error {
	m.jobs[job.ID] = job
	return nil
}

func (m *mockJobStorage) Get(ctx context.Context, id string) (domain.RankJob, error) {
	job, ok := m.jobs[id]
	if !ok {
		return domain.RankJob{}, &apperrors.NotFoundError{Resource: "job", ID: id}
	}
	return job, nil
}

func (m *mockJobStorage) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]domain.RankJob, error) {
	return nil, nil
}

func (m *mockJobStorage) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	return len(m.jobs), nil
}

func (m *mockJobStorage) ListAll(ctx context.Context) ([]domain.RankJob, error) {
	return nil, nil
}

func (m *mockJobStorage) Delete(ctx context.Context, id string) error {
	delete(m.jobs, id)
	return nil
}

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
	return []byte(`{}`), nil
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
