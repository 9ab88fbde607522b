// ABOUTME: Response DTOs for the rank job and result endpoints
// ABOUTME: Paged listings carry totals alongside the page slice

package responses

import "time"

// JobResponse is the wire form of one tracking job
type JobResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Keyword   string    `json:"keyword"`
	CreatedAt time.Time `json:"created_at"`
}

// JobListResponse is one page of tracking jobs, newest first
type JobListResponse struct {
	Jobs    []JobResponse `json:"jobs"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	PerPage int           `json:"per_page"`
}

// RankResultResponse is the wire form of one rank observation
type RankResultResponse struct {
	JobID string    `json:"job_id"`
	Rank  *int      `json:"rank"`
	RunAt time.Time `json:"run_at"`
}

// RankHistoryResponse is a job's check history, oldest first
type RankHistoryResponse struct {
	Results []RankResultResponse `json:"results"`
}

// RecheckResponse acknowledges a dispatched recheck
type RecheckResponse struct {
	// Accepted is true when the collaborator took the request
	Accepted bool `json:"accepted"`
}
