// ABOUTME: Request DTOs for the rank job endpoints
// ABOUTME: Validation of presence happens in the core services

package requests

// CreateJobRequest is the body for registering a tracking job
type CreateJobRequest struct {
	// URL is the page to track; scheme-less values get an https prefix
	URL string `json:"url" example:"example.com/pricing" doc:"Page to track"`

	// Keyword is the search term to track for the URL
	Keyword string `json:"keyword" example:"pricing software" doc:"Search term to track"`
}

// AppendResultRequest is the body for recording a rank observation
type AppendResultRequest struct {
	// Rank is the observed position; omit when the page was not found
	Rank *int `json:"rank,omitempty" example:"4" doc:"Observed position, omitted when not found"`

	// RunAt is when the check ran; defaults to now when omitted
	RunAt string `json:"run_at,omitempty" example:"2026-08-28T12:00:00Z" doc:"Check time, RFC 3339"`
}
