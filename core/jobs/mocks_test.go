// ABOUTME: Hand-rolled mocks for the jobs service tests
// ABOUTME: In-memory job storage plus a silent logger

package jobs

import (
	"context"
	"sort"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

type mockJobStorage struct {
	jobs      map[string]domain.RankJob
	createErr error
}

func newMockJobStorage() *mockJobStorage {
	return &mockJobStorage{jobs: make(map[string]domain.RankJob)}
}

func (m *mockJobStorage) Create(ctx context.Context, job domain.RankJob) error {
	if m.createErr != nil {
		return m.createErr
	}
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
	var owned []domain.RankJob
	for _, job := range m.jobs {
		if job.OwnerID == ownerID {
			owned = append(owned, job)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	if offset >= len(owned) {
		return nil, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], nil
}

func (m *mockJobStorage) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	count := 0
	for _, job := range m.jobs {
		if job.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (m *mockJobStorage) ListAll(ctx context.Context) ([]domain.RankJob, error) {
	var all []domain.RankJob
	for _, job := range m.jobs {
		all = append(all, job)
	}
	return all, nil
}

func (m *mockJobStorage) Delete(ctx context.Context, id string) error {
	delete(m.jobs, id)
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
