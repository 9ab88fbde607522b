// ABOUTME: Rank job domain model for tracked (URL, keyword) pairs
// ABOUTME: Defines the long-lived tracking job entity and its paginated listing

package domain

import "time"

// RankJob represents a tracked (URL, keyword) pair owned by a single caller
type RankJob struct {
	// ID is the unique identifier of the job
	ID string

	// OwnerID identifies the caller who owns this job
	OwnerID string

	// URL is the tracked page in normalized absolute form
	URL string

	// Keyword is the trimmed, non-empty search term being tracked
	Keyword string

	// CreatedAt is when the job was registered
	CreatedAt time.Time
}

// JobPage is one page of a caller's tracked jobs, newest first
type JobPage struct {
	// Jobs holds the jobs on this page, ordered by CreatedAt descending
	Jobs []RankJob

	// Total is the total number of jobs the owner has
	Total int

	// Page is the 1-based page number
	Page int

	// PerPage is the page size used for this listing
	PerPage int
}
