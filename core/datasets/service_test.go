// ABOUTME: Tests for dataset snapshot save, load and delete
// ABOUTME: Persistence failures must degrade instead of blocking

package datasets

import (
	"context"
	"errors"
	"testing"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/normalize"
	"keyword-intel-api/core/research"
)

func intPtr(n int) *int { return &n }

func newTestService() (*Service, *mockDatasetStorage, *research.Store, *mockLogger) {
	storage := newMockDatasetStorage()
	logger := &mockLogger{}
	store := research.NewStore()
	deps := &interfaces.Dependencies{
		Datasets: storage,
		Logger:   logger,
	}
	return NewService(deps, store, normalize.Config{}), storage, store, logger
}

func TestSaveSnapshotsWorkingSet(t *testing.T) {
	svc, storage, store, _ := newTestService()
	store.Replace([]domain.KeywordInsight{{Keyword: "seo tips", MonthlySearches: intPtr(2000)}})

	ds, err := svc.Save(context.Background(), "  launch research  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Name != "launch research" {
		t.Errorf("Name = %q, want trimmed", ds.Name)
	}
	if len(ds.Rows) != 1 {
		t.Errorf("Rows = %d, want 1", len(ds.Rows))
	}
	if _, ok := storage.datasets[ds.ID]; !ok {
		t.Error("dataset not persisted")
	}
}

func TestSaveRequiresName(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.Save(context.Background(), "  "); !apperrors.IsValidation(err) {
		t.Errorf("err = %v, want validation error", err)
	}
}

func TestSaveSwallowsPersistenceFailure(t *testing.T) {
	svc, storage, _, logger := newTestService()
	storage.saveErr = errors.New("disk full")

	if _, err := svc.Save(context.Background(), "doomed"); err != nil {
		t.Fatalf("persistence failure surfaced: %v", err)
	}
	if len(logger.warnings) == 0 {
		t.Error("persistence failure not logged")
	}
}

func TestLoadReplacesWorkingSet(t *testing.T) {
	svc, storage, store, _ := newTestService()
	store.Replace([]domain.KeywordInsight{{Keyword: "stale"}})

	storage.datasets["ds-1"] = domain.Dataset{
		ID:   "ds-1",
		Name: "saved",
		Rows: []domain.KeywordInsight{
			{Keyword: "restored", MonthlySearches: intPtr(1000)},
		},
	}

	rows, err := svc.Load(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].Keyword != "restored" {
		t.Errorf("rows = %v, want restored snapshot", rows)
	}
	if store.Snapshot()[0].Keyword != "restored" {
		t.Error("working set not replaced")
	}
}

func TestLoadRenormalizesDriftedRows(t *testing.T) {
	svc, storage, _, _ := newTestService()

	storage.datasets["ds-1"] = domain.Dataset{
		ID: "ds-1",
		Rows: []domain.KeywordInsight{
			{Keyword: "kept", MonthlySearches: intPtr(3000)},
			{Keyword: "   "},
		},
	}

	rows, err := svc.Load(context.Background(), "ds-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len = %d, want drifted row dropped", len(rows))
	}
	// daily visitors were absent in the stored row, so the load derives them
	if rows[0].DailyVisitors == nil || *rows[0].DailyVisitors != 32 {
		t.Errorf("DailyVisitors = %v, want derived 32", rows[0].DailyVisitors)
	}
}

func TestLoadUnknownDataset(t *testing.T) {
	svc, _, _, _ := newTestService()
	if _, err := svc.Load(context.Background(), "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}

func TestListDegradesOnReadFailure(t *testing.T) {
	svc, storage, _, logger := newTestService()
	storage.listErr = errors.New("corrupt file")

	if got := svc.List(context.Background()); got != nil {
		t.Errorf("List = %v, want empty on read failure", got)
	}
	if len(logger.warnings) == 0 {
		t.Error("read failure not logged")
	}
}

func TestDelete(t *testing.T) {
	svc, storage, _, _ := newTestService()
	storage.datasets["ds-1"] = domain.Dataset{ID: "ds-1"}

	if err := svc.Delete(context.Background(), "ds-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := storage.datasets["ds-1"]; ok {
		t.Error("dataset still present")
	}

	if err := svc.Delete(context.Background(), "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}
