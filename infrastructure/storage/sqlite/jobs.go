// ABOUTME: SQLite implementation of the job storage interface
// ABOUTME: Deleting a job also removes its accumulated rank history

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

// JobStore persists rank jobs in SQLite
type JobStore struct {
	db *sql.DB
}

// NewJobStore creates a job store on the shared client
func NewJobStore(client *Client) *JobStore {
	return &JobStore{db: client.db}
}

// Create stores a new job
func (s *JobStore) Create(ctx context.Context, job domain.RankJob) error {
	query := "INSERT INTO rank_jobs (id, owner_id, url, keyword, created_at) VALUES (?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query, job.ID, job.OwnerID, job.URL, job.Keyword, job.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert job: %w", err)
	}
	return nil
}

// Get returns the job with the given ID
func (s *JobStore) Get(ctx context.Context, id string) (domain.RankJob, error) {
	query := "SELECT id, owner_id, url, keyword, created_at FROM rank_jobs WHERE id = ?"

	var job domain.RankJob
	var createdAt int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(&job.ID, &job.OwnerID, &job.URL, &job.Keyword, &createdAt)
	if err == sql.ErrNoRows {
		return domain.RankJob{}, &apperrors.NotFoundError{Resource: "job", ID: id}
	}
	if err != nil {
		return domain.RankJob{}, fmt.Errorf("failed to get job: %w", err)
	}

	job.CreatedAt = time.Unix(0, createdAt).UTC()
	return job, nil
}

// ListByOwner returns one page of the owner's jobs, newest first
func (s *JobStore) ListByOwner(ctx context.Context, ownerID string, offset, limit int) ([]domain.RankJob, error) {
	query := `
		SELECT id, owner_id, url, keyword, created_at FROM rank_jobs
		WHERE owner_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?`

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// CountByOwner returns the owner's total job count
func (s *JobStore) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rank_jobs WHERE owner_id = ?", ownerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}

// ListAll returns every stored job, for background dispatch
func (s *JobStore) ListAll(ctx context.Context) ([]domain.RankJob, error) {
	query := "SELECT id, owner_id, url, keyword, created_at FROM rank_jobs ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	return scanJobs(rows)
}

// Delete removes a job and its results in one transaction
func (s *JobStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM rank_results WHERE job_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM rank_jobs WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return tx.Commit()
}

func scanJobs(rows *sql.Rows) ([]domain.RankJob, error) {
	var jobs []domain.RankJob
	for rows.Next() {
		var job domain.RankJob
		var createdAt int64
		if err := rows.Scan(&job.ID, &job.OwnerID, &job.URL, &job.Keyword, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		job.CreatedAt = time.Unix(0, createdAt).UTC()
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}
