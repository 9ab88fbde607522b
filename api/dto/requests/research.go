// ABOUTME: Request DTOs for the keyword research endpoints
// ABOUTME: Keywords are trimmed and blank entries dropped by the service

package requests

// AnalyzeRequest is the body for a keyword-research analysis call
type AnalyzeRequest struct {
	// URL is the page the keywords are analyzed against
	URL string `json:"url" example:"example.com" doc:"Page to analyze"`

	// Keywords is the list of search terms to analyze
	Keywords []string `json:"keywords" example:"[\"seo tips\"]" doc:"Search terms to analyze"`
}
