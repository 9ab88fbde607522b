// ABOUTME: Hand-rolled mocks for the dataset service tests
// ABOUTME: In-memory snapshot storage with injectable failures

package datasets

import (
	"context"
	"sort"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

type mockDatasetStorage struct {
	datasets map[string]domain.Dataset
	saveErr  error
	listErr  error
}

func newMockDatasetStorage() *mockDatasetStorage {
	return &mockDatasetStorage{datasets: make(map[string]domain.Dataset)}
}

func (m *mockDatasetStorage) Save(ctx context.Context, dataset domain.Dataset) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.datasets[dataset.ID] = dataset
	return nil
}

func (m *mockDatasetStorage) Get(ctx context.Context, id string) (domain.Dataset, error) {
	ds, ok := m.datasets[id]
	if !ok {
		return domain.Dataset{}, &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}
	return ds, nil
}

func (m *mockDatasetStorage) List(ctx context.Context) ([]domain.Dataset, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []domain.Dataset
	for _, ds := range m.datasets {
		ds.Rows = nil
		out = append(out, ds)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SavedAt.After(out[j].SavedAt) })
	return out, nil
}

func (m *mockDatasetStorage) Delete(ctx context.Context, id string) error {
	if _, ok := m.datasets[id]; !ok {
		return &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}
	delete(m.datasets, id)
	return nil
}

type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	m.warnings = append(m.warnings, msg)
}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
