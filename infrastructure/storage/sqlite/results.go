// ABOUTME: SQLite implementation of the append-only rank result storage
// ABOUTME: Results are listed oldest first with a hard limit

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"keyword-intel-api/core/domain"
)

// ResultStore persists rank observations in SQLite
type ResultStore struct {
	db *sql.DB
}

// NewResultStore creates a result store on the shared client
func NewResultStore(client *Client) *ResultStore {
	return &ResultStore{db: client.db}
}

// Append records a new rank observation
func (s *ResultStore) Append(ctx context.Context, result domain.RankResult) error {
	var rank sql.NullInt64
	if result.Rank != nil {
		rank = sql.NullInt64{Int64: int64(*result.Rank), Valid: true}
	}

	query := `INSERT INTO rank_results (job_id, "rank", run_at) VALUES (?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query, result.JobID, rank, result.RunAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}
	return nil
}

// List returns a job's results ordered by run time ascending
func (s *ResultStore) List(ctx context.Context, jobID string, limit int) ([]domain.RankResult, error) {
	query := `SELECT job_id, "rank", run_at FROM rank_results WHERE job_id = ? ORDER BY run_at ASC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, jobID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer rows.Close()

	var results []domain.RankResult
	for rows.Next() {
		var result domain.RankResult
		var rank sql.NullInt64
		var runAt int64
		if err := rows.Scan(&result.JobID, &rank, &runAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if rank.Valid {
			v := int(rank.Int64)
			result.Rank = &v
		}
		result.RunAt = time.Unix(0, runAt).UTC()
		results = append(results, result)
	}
	return results, rows.Err()
}
