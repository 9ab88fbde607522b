// ABOUTME: Response DTOs for the dataset snapshot endpoints
// ABOUTME: Listings carry metadata only; loads return the restored rows

package responses

import "time"

// DatasetResponse is the wire form of one snapshot's metadata
type DatasetResponse struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Rows    int       `json:"rows"`
	SavedAt time.Time `json:"saved_at"`
}

// DatasetListResponse lists stored snapshots, most recent first
type DatasetListResponse struct {
	Datasets []DatasetResponse `json:"datasets"`
}

// DatasetLoadResponse is the working set after loading a snapshot
type DatasetLoadResponse struct {
	Rows    []KeywordInsightResponse `json:"rows"`
	Summary SummaryResponse          `json:"summary"`
}
