// ABOUTME: Hand-rolled mocks for the results service tests
// ABOUTME: In-memory job and result storage stand-ins

package results

import (
	"context"
	"sort"

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

type mockResultStorage struct {
	results []domain.RankResult
}

func (m *mockResultStorage) Append(ctx context.Context, result domain.RankResult) error {
	m.results = append(m.results, result)
	return nil
}

func (m *mockResultStorage) List(ctx context.Context, jobID string, limit int) ([]domain.RankResult, error) {
	var out []domain.RankResult
	for _, r := range m.results {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RunAt.Before(out[j].RunAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
