// ABOUTME: Discovery row domain model for ranking-keyword discovery responses
// ABOUTME: Extends the canonical insight subset with discovery-only fields

package domain

// DiscoveryRow is one keyword discovered for a URL. It carries the canonical
// insight subset plus discovery-only fields. EstimatedPosition is retained
// only when no exact RankingPosition is known; Estimated marks such rows for
// display.
type DiscoveryRow struct {
	Keyword           string  `json:"keyword"`
	RankingPage       *string `json:"ranking_page"`
	RankingPosition   *int    `json:"ranking_position"`
	RankingPageNumber *int    `json:"ranking_page_number"`
	MonthlySearches   *int    `json:"monthly_searches,omitempty"`

	// TrafficEstimate is the provider's estimated visitor count, if any
	TrafficEstimate *int `json:"traffic_estimate,omitempty"`

	// EstimatedPosition is kept only when RankingPosition is nil
	EstimatedPosition *int `json:"estimated_position,omitempty"`

	// Notes is free-form provider commentary, if any
	Notes *string `json:"notes,omitempty"`

	// Estimated is true when the displayed position is an estimate
	Estimated bool `json:"estimated,omitempty"`
}
