// ABOUTME: Ranking discovery service for finding keywords a URL ranks for
// ABOUTME: Each call replaces the previous discovery set, never merges

package discovery

import (
	"bytes"
	"context"
	"encoding/json"

	"keyword-intel-api/core/domain"
	apperrors "keyword-intel-api/core/errors"
	"keyword-intel-api/core/interfaces"
	"keyword-intel-api/core/normalize"
)

const serviceName = "ranking-discovery"

// Options configures the discovery service
type Options struct {
	// DiscoveryURL is the ranking-discovery endpoint
	DiscoveryURL string
}

// Service calls the ranking-discovery collaborator
type Service struct {
	deps *interfaces.Dependencies
	opts Options
}

// NewService creates a new discovery service
func NewService(deps *interfaces.Dependencies, opts Options) *Service {
	return &Service{deps: deps, opts: opts}
}

// Outcome is the result of one discovery call. Rows replace whatever the
// caller displayed before; discovery sets are never merged across calls.
type Outcome struct {
	Rows    []domain.DiscoveryRow
	Dropped int

	// Remaining is the provider's quota counter; nil when Unlimited
	Remaining *int

	// Unlimited is true when the provider reports no quota
	Unlimited bool
}

type discoveryRequest struct {
	URL string `json:"url"`
}

type discoveryResponse struct {
	Success   bool                     `json:"success"`
	Rows      []map[string]interface{} `json:"rows"`
	Remaining json.RawMessage          `json:"remaining"`
}

// Discover validates the URL, calls the collaborator and returns the
// normalized, deduplicated discovery rows
func (s *Service) Discover(ctx context.Context, rawURL string) (*Outcome, error) {
	pageURL, err := normalize.URL(rawURL)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(discoveryRequest{URL: pageURL})
	if err != nil {
		return nil, apperrors.WrapError(err, "encoding discovery request")
	}

	headers := map[string]string{"Content-Type": "application/json"}
	if s.deps.Credentials != nil {
		if token := s.deps.Credentials.Token(ctx); token != "" {
			headers["Authorization"] = "Bearer " + token
		}
	}

	body, err := s.deps.HTTPClient.Post(ctx, s.opts.DiscoveryURL, bytes.NewReader(payload), headers)
	if err != nil {
		if apperrors.IsRemoteService(err) {
			return nil, err
		}
		return nil, &apperrors.RemoteServiceError{Message: err.Error(), Service: serviceName}
	}

	var resp discoveryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &apperrors.RemoteServiceError{Message: "unreadable discovery response", Service: serviceName}
	}
	if !resp.Success {
		return nil, &apperrors.RemoteServiceError{Message: "discovery request failed", Service: serviceName}
	}

	batch := normalize.DiscoveryBatch(resp.Rows)
	outcome := &Outcome{Rows: batch.Rows, Dropped: batch.Dropped}
	outcome.Remaining, outcome.Unlimited = parseRemaining(resp.Remaining)

	s.deps.Logger.Info("discovery completed", map[string]interface{}{
		"url":     pageURL,
		"rows":    len(outcome.Rows),
		"dropped": outcome.Dropped,
	})
	return outcome, nil
}

// parseRemaining handles the provider's int-or-"unlimited" quota field
func parseRemaining(raw json.RawMessage) (*int, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n, false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s == "unlimited" {
		return nil, true
	}
	return nil, false
}
