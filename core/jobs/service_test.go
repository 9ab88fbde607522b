// ABOUTME: Tests for the rank job service
// ABOUTME: Covers validation, URL normalization, paging and deletion

package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
)

func newTestService() (*Service, *mockJobStorage) {
	storage := newMockJobStorage()
	deps := &interfaces.Dependencies{
		Jobs:   storage,
		Logger: &mockLogger{},
	}
	return NewService(deps), storage
}

func TestCreateNormalizesURL(t *testing.T) {
	svc, storage := newTestService()

	job, err := svc.Create(context.Background(), "owner-1", "example.com/page", "  seo tips  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.URL != "https://example.com/page" {
		t.Errorf("URL = %q, want normalized form", job.URL)
	}
	if job.Keyword != "seo tips" {
		t.Errorf("Keyword = %q, want trimmed", job.Keyword)
	}
	if job.ID == "" {
		t.Error("job ID not assigned")
	}
	if _, ok := storage.jobs[job.ID]; !ok {
		t.Error("job not persisted")
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, "", "example.com", "k"); !apperrors.IsValidation(err) {
		t.Errorf("blank owner: err = %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, "owner-1", "   ", "k"); !apperrors.IsValidation(err) {
		t.Errorf("blank url: err = %v, want validation error", err)
	}
	if _, err := svc.Create(ctx, "owner-1", "example.com", "  "); !apperrors.IsValidation(err) {
		t.Errorf("blank keyword: err = %v, want validation error", err)
	}
}

func TestListPagesNewestFirst(t *testing.T) {
	svc, storage := newTestService()
	ctx := context.Background()

	base := time.Now().UTC()
	for i := 0; i < 25; i++ {
		job, err := svc.Create(ctx, "owner-1", "example.com", fmt.Sprintf("kw %d", i))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// spread creation times so ordering is deterministic
		j := storage.jobs[job.ID]
		j.CreatedAt = base.Add(time.Duration(i) * time.Second)
		storage.jobs[job.ID] = j
	}

	page, err := svc.List(ctx, "owner-1", 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.PerPage != DefaultPageSize {
		t.Errorf("PerPage = %d, want default %d", page.PerPage, DefaultPageSize)
	}
	if len(page.Jobs) != 10 || page.Total != 25 {
		t.Errorf("len = %d total = %d, want 10 and 25", len(page.Jobs), page.Total)
	}
	if page.Jobs[0].Keyword != "kw 24" {
		t.Errorf("first job = %q, want newest", page.Jobs[0].Keyword)
	}

	last, err := svc.List(ctx, "owner-1", 3, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(last.Jobs) != 5 {
		t.Errorf("last page len = %d, want 5", len(last.Jobs))
	}
}

func TestListClampsPageArguments(t *testing.T) {
	svc, _ := newTestService()

	page, err := svc.List(context.Background(), "owner-1", -3, 1000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Page != 1 {
		t.Errorf("Page = %d, want clamped to 1", page.Page)
	}
	if page.PerPage != MaxPageSize {
		t.Errorf("PerPage = %d, want capped at %d", page.PerPage, MaxPageSize)
	}
}

func TestDelete(t *testing.T) {
	svc, storage := newTestService()
	ctx := context.Background()

	job, err := svc.Create(ctx, "owner-1", "example.com", "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(ctx, job.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := storage.jobs[job.ID]; ok {
		t.Error("job still present after delete")
	}

	if err := svc.Delete(ctx, "missing"); !apperrors.IsNotFound(err) {
		t.Errorf("err = %v, want not found", err)
	}
}
