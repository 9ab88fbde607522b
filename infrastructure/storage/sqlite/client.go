// ABOUTME: SQLite-backed persistence for jobs, rank history and datasets
// ABOUTME: File-based storage that survives application restarts

package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Client wraps the SQLite connection shared by the typed stores
type Client struct {
	db       *sql.DB
	filePath string
}

// NewClient opens (or creates) the database file and initializes the schema.
// Pass ":memory:" for an ephemeral database.
func NewClient(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "keyword-intel.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{db: db, filePath: filePath}
	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return client, nil
}

// initSchema creates the tables if they don't exist
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS rank_jobs (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			url TEXT NOT NULL,
			keyword TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rank_jobs_owner ON rank_jobs(owner_id, created_at);

		CREATE TABLE IF NOT EXISTS rank_results (
			job_id TEXT NOT NULL,
			"rank" INTEGER,
			run_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rank_results_job ON rank_results(job_id, run_at);

		CREATE TABLE IF NOT EXISTS datasets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			rows BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_datasets_saved ON datasets(saved_at);
	`

	_, err := c.db.Exec(query)
	return err
}

// Close closes the database connection
func (c *Client) Close() error {
	return c.db.Close()
}
