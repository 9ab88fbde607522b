// ABOUTME: Request DTOs for the dataset snapshot endpoints
// ABOUTME: Saving snapshots the current working set under a name

package requests

// SaveDatasetRequest is the body for saving the working set as a snapshot
type SaveDatasetRequest struct {
	// Name labels the snapshot
	Name string `json:"name" example:"launch research" doc:"Snapshot label"`
}
