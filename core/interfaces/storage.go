// ABOUTME: Storage interfaces for jobs, rank results and saved datasets
// ABOUTME: Abstract persistence so services stay backend-agnostic

package interfaces

import (
	"context"

	"keyword-intel-api/core/domain"
)

// JobStorage persists rank-tracking jobs
type JobStorage interface {
	// Create stores a new job
	Create(ctx context.Context, job domain.RankJob) error

	// Get returns the job with the given ID, or a not-found error
	Get(ctx context.Context, id string) (domain.RankJob, error)

	// ListByOwner returns one page of the owner's jobs, newest first
	ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]domain.RankJob, error)

	// CountByOwner returns the owner's total job count
	CountByOwner(ctx context.Context, ownerID string) (int, error)

	// ListAll returns every stored job, for background dispatch
	ListAll(ctx context.Context) ([]domain.RankJob, error)

	// Delete removes a job and its accumulated results
	Delete(ctx context.Context, id string) error
}

// ResultStorage persists the append-only rank-check history
type ResultStorage interface {
	// Append records a new rank observation
	Append(ctx context.Context, result domain.RankResult) error

	// List returns a job's results ordered by run time ascending,
	// at most limit entries
	List(ctx context.Context, jobID string, limit int) ([]domain.RankResult, error)
}

// DatasetStorage persists named snapshots of the working set
type DatasetStorage interface {
	// Save stores a snapshot and enforces the retention cap
	Save(ctx context.Context, dataset domain.Dataset) error

	// Get returns the snapshot with the given ID, or a not-found error
	Get(ctx context.Context, id string) (domain.Dataset, error)

	// List returns snapshot metadata, most recently saved first.
	// Returned datasets carry empty Rows.
	List(ctx context.Context) ([]domain.Dataset, error)

	// Delete removes a snapshot
	Delete(ctx context.Context, id string) error
}
