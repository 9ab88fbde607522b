// ABOUTME: Rank result service for the append-only check history
// ABOUTME: Records observations and serves them oldest first with a cap

package results

import (
	"context"
	"time"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
)

// MaxHistoryEntries caps how many results a history listing returns
const MaxHistoryEntries = 200

// Service manages the append-only rank history
type Service struct {
	deps *interfaces.Dependencies
}

// NewService creates a new results service
func NewService(deps *interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Append records a rank observation for a job. A nil rank means the tracked
// page was not found in the results. A zero runAt defaults to now.
func (s *Service) Append(ctx context.Context, jobID string, rank *int, runAt time.Time) (domain.RankResult, error) {
	if _, err := s.deps.Jobs.Get(ctx, jobID); err != nil {
		return domain.RankResult{}, err
	}
	if rank != nil && *rank < 1 {
		return domain.RankResult{}, &apperrors.ValidationError{Field: "rank", Message: "rank must be positive"}
	}
	if runAt.IsZero() {
		runAt = time.Now().UTC()
	}

	result := domain.RankResult{JobID: jobID, Rank: rank, RunAt: runAt}
	if err := s.deps.Results.Append(ctx, result); err != nil {
		return domain.RankResult{}, apperrors.WrapError(err, "appending result")
	}
	return result, nil
}

// History returns a job's results ordered by run time ascending, capped at
// MaxHistoryEntries
func (s *Service) History(ctx context.Context, jobID string) ([]domain.RankResult, error) {
	if _, err := s.deps.Jobs.Get(ctx, jobID); err != nil {
		return nil, err
	}

	list, err := s.deps.Results.List(ctx, jobID, MaxHistoryEntries)
	if err != nil {
		return nil, apperrors.WrapError(err, "listing results")
	}
	return list, nil
}
