// ABOUTME: Rank job service managing tracked (URL, keyword) pairs
// ABOUTME: Handles creation with URL normalization, paging and deletion

package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/normalize"
)

const (
	// DefaultPageSize is the job listing page size when none is requested
	DefaultPageSize = 10

	// MaxPageSize caps the requested page size
	MaxPageSize = 100
)

// Service manages rank-tracking jobs
type Service struct {
	deps *interfaces.Dependencies
}

// NewService creates a new jobs service
func NewService(deps *interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Create registers a new tracking job for the owner. The URL is normalized
// and the keyword trimmed before anything is stored.
func (s *Service) Create(ctx context.Context, ownerID, rawURL, keyword string) (domain.RankJob, error) {
	if strings.TrimSpace(ownerID) == "" {
		return domain.RankJob{}, &apperrors.ValidationError{Field: "owner_id", Message: "owner is required"}
	}

	pageURL, err := normalize.URL(rawURL)
	if err != nil {
		return domain.RankJob{}, err
	}

	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return domain.RankJob{}, &apperrors.ValidationError{Field: "keyword", Message: "keyword is required"}
	}

	job := domain.RankJob{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		URL:       pageURL,
		Keyword:   keyword,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.deps.Jobs.Create(ctx, job); err != nil {
		return domain.RankJob{}, apperrors.WrapError(err, "creating job")
	}

	s.deps.Logger.Info("job created", map[string]interface{}{
		"job_id":  job.ID,
		"url":     job.URL,
		"keyword": job.Keyword,
	})
	return job, nil
}

// List returns one page of the owner's jobs, newest first. Page numbers are
// 1-based; out-of-range sizes fall back to the defaults.
func (s *Service) List(ctx context.Context, ownerID string, page, perPage int) (domain.JobPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}

	total, err := s.deps.Jobs.CountByOwner(ctx, ownerID)
	if err != nil {
		return domain.JobPage{}, apperrors.WrapError(err, "counting jobs")
	}

	list, err := s.deps.Jobs.ListByOwner(ctx, ownerID, (page-1)*perPage, perPage)
	if err != nil {
		return domain.JobPage{}, apperrors.WrapError(err, "listing jobs")
	}

	return domain.JobPage{Jobs: list, Total: total, Page: page, PerPage: perPage}, nil
}

// Get returns a single job by ID
func (s *Service) Get(ctx context.Context, id string) (domain.RankJob, error) {
	return s.deps.Jobs.Get(ctx, id)
}

// Delete removes a job and its accumulated rank history
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.deps.Jobs.Get(ctx, id); err != nil {
		return err
	}
	if err := s.deps.Jobs.Delete(ctx, id); err != nil {
		return apperrors.WrapError(err, "deleting job")
	}

	s.deps.Logger.Info("job deleted", map[string]interface{}{"job_id": id})
	return nil
}
