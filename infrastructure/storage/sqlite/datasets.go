// ABOUTME: SQLite implementation of the dataset snapshot storage
// ABOUTME: Enforces the retention cap by trimming the oldest snapshots

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
)

// DatasetStore persists named snapshots in SQLite
type DatasetStore struct {
	db *sql.DB
}

// NewDatasetStore creates a dataset store on the shared client
func NewDatasetStore(client *Client) *DatasetStore {
	return &DatasetStore{db: client.db}
}

// Save stores a snapshot and trims entries beyond the retention cap,
// dropping the oldest first
func (s *DatasetStore) Save(ctx context.Context, dataset domain.Dataset) error {
	rowsJSON, err := json.Marshal(dataset.Rows)
	if err != nil {
		return fmt.Errorf("failed to encode dataset rows: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := "INSERT INTO datasets (id, name, rows, saved_at) VALUES (?, ?, ?, ?)"
	if _, err := tx.ExecContext(ctx, insert, dataset.ID, dataset.Name, rowsJSON, dataset.SavedAt.UnixNano()); err != nil {
		return fmt.Errorf("failed to insert dataset: %w", err)
	}

	trim := `
		DELETE FROM datasets WHERE id NOT IN (
			SELECT id FROM datasets ORDER BY saved_at DESC LIMIT ?
		)`
	if _, err := tx.ExecContext(ctx, trim, domain.MaxSavedDatasets); err != nil {
		return fmt.Errorf("failed to trim datasets: %w", err)
	}

	return tx.Commit()
}

// Get returns the snapshot with the given ID, rows included
func (s *DatasetStore) Get(ctx context.Context, id string) (domain.Dataset, error) {
	query := "SELECT id, name, rows, saved_at FROM datasets WHERE id = ?"

	var dataset domain.Dataset
	var rowsJSON []byte
	var savedAt int64
	err := s.db.QueryRowContext(ctx, query, id).Scan(&dataset.ID, &dataset.Name, &rowsJSON, &savedAt)
	if err == sql.ErrNoRows {
		return domain.Dataset{}, &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to get dataset: %w", err)
	}

	if err := json.Unmarshal(rowsJSON, &dataset.Rows); err != nil {
		return domain.Dataset{}, fmt.Errorf("failed to decode dataset rows: %w", err)
	}
	dataset.SavedAt = time.Unix(0, savedAt).UTC()
	return dataset, nil
}

// List returns snapshot metadata, most recently saved first. Rows are left
// empty; use Get to fetch a snapshot's contents.
func (s *DatasetStore) List(ctx context.Context) ([]domain.Dataset, error) {
	query := "SELECT id, name, saved_at FROM datasets ORDER BY saved_at DESC"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list datasets: %w", err)
	}
	defer rows.Close()

	var datasets []domain.Dataset
	for rows.Next() {
		var dataset domain.Dataset
		var savedAt int64
		if err := rows.Scan(&dataset.ID, &dataset.Name, &savedAt); err != nil {
			return nil, fmt.Errorf("failed to scan dataset: %w", err)
		}
		dataset.SavedAt = time.Unix(0, savedAt).UTC()
		datasets = append(datasets, dataset)
	}
	return datasets, rows.Err()
}

// Delete removes a snapshot
func (s *DatasetStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM datasets WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete dataset: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return &apperrors.NotFoundError{Resource: "dataset", ID: id}
	}
	return nil
}
