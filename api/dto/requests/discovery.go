// ABOUTME: Request DTOs for the ranking discovery endpoint
// ABOUTME: A discovery call carries only the URL to inspect

package requests

// DiscoverRequest is the body for a ranking-discovery call
type DiscoverRequest struct {
	// URL is the page whose ranking keywords are discovered
	URL string `json:"url" example:"example.com" doc:"Page to discover keywords for"`
}
