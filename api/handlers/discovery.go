// ABOUTME: Ranking discovery handlers for the Huma API
// ABOUTME: HTTP endpoint for finding keywords a URL already ranks for

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"keyword-intel-api/api/dto/mappers"
	"keyword-intel-api/api/dto/requests"
	"keyword-intel-api/api/dto/responses"
	"keyword-intel-api/core/discovery"
)

// DiscoveryService defines the methods needed from the discovery service
type DiscoveryService interface {
	Discover(ctx context.Context, rawURL string) (*discovery.Outcome, error)
}

// DiscoveryHandler handles ranking discovery HTTP requests
type DiscoveryHandler struct {
	discovery DiscoveryService
}

// NewDiscoveryHandler creates a new discovery handler
func NewDiscoveryHandler(discovery DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{discovery: discovery}
}

// RegisterRoutes registers all discovery-related routes
func (h *DiscoveryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "discoverRankings",
		Method:      http.MethodPost,
		Path:        "/discovery",
		Summary:     "Discover ranking keywords",
		Description: "Asks the discovery provider which keywords the given URL already ranks for; each call replaces the previous discovery set",
		Tags:        []string{"Discovery"},
	}, h.Discover)
}

// DiscoverInput defines the input for the Discover operation
type DiscoverInput struct {
	Body requests.DiscoverRequest
}

// DiscoverOutput defines the output for the Discover operation
type DiscoverOutput struct {
	Body responses.DiscoveryResponse
}

// Discover handles POST /discovery
func (h *DiscoveryHandler) Discover(ctx context.Context, input *DiscoverInput) (*DiscoverOutput, error) {
	outcome, err := h.discovery.Discover(ctx, input.Body.URL)
	if err != nil {
		return nil, toHumaError(err)
	}
	return &DiscoverOutput{Body: responses.DiscoveryResponse{
		Rows:      mappers.ToDiscoveryRowResponses(outcome.Rows),
		Dropped:   outcome.Dropped,
		Remaining: outcome.Remaining,
		Unlimited: outcome.Unlimited,
	}}, nil
}
