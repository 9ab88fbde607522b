// ABOUTME: Dataset domain model for named snapshots of the working set
// ABOUTME: Snapshots are kept most-recent-first with a hard retention cap

package domain

import "time"

// MaxSavedDatasets is the retention cap for stored snapshots; saving beyond
// the cap drops the oldest entries.
const MaxSavedDatasets = 20

// Dataset is a named, persisted copy of the working set at a point in time
type Dataset struct {
	// ID is the unique identifier of the snapshot
	ID string `json:"id"`

	// Name is the caller-supplied label
	Name string `json:"name"`

	// Rows holds the snapshot contents
	Rows []KeywordInsight `json:"rows"`

	// SavedAt is when the snapshot was taken
	SavedAt time.Time `json:"saved_at"`
}
