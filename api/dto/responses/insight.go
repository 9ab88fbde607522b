// ABOUTME: Response DTOs for canonical keyword insights and discovery rows
// ABOUTME: Wire shapes decoupled from the core domain models

package responses

// KeywordInsightResponse is the wire form of one canonical insight
type KeywordInsightResponse struct {
	Keyword           string   `json:"keyword"`
	RankingPage       *string  `json:"ranking_page"`
	RankingPosition   *int     `json:"ranking_position"`
	RankingPageNumber *int     `json:"ranking_page_number"`
	MonthlySearches   *int     `json:"monthly_searches"`
	DailyVisitors     *int     `json:"daily_visitors"`
	TopCompetitors    []string `json:"top_competitors"`
	Difficulty        *string  `json:"difficulty"`
}

// DiscoveryRowResponse is the wire form of one discovered keyword
type DiscoveryRowResponse struct {
	Keyword           string  `json:"keyword"`
	RankingPage       *string `json:"ranking_page"`
	RankingPosition   *int    `json:"ranking_position"`
	RankingPageNumber *int    `json:"ranking_page_number"`
	MonthlySearches   *int    `json:"monthly_searches,omitempty"`
	TrafficEstimate   *int    `json:"traffic_estimate,omitempty"`
	EstimatedPosition *int    `json:"estimated_position,omitempty"`
	Notes             *string `json:"notes,omitempty"`
	Estimated         bool    `json:"estimated"`
}
