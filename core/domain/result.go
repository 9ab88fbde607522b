// ABOUTME: Rank result domain model for the append-only check history
// ABOUTME: One entry per rank check, ordered ascending by run time

package domain

import "time"

// RankResult is a single rank-check observation for a job.
// Results are append-only: they are never mutated or deleted individually.
type RankResult struct {
	// JobID references the RankJob this result belongs to
	JobID string

	// Rank is the observed position, nil when the page was not found
	Rank *int

	// RunAt is when the check ran
	RunAt time.Time
}
