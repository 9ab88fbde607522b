// ABOUTME: Response DTOs for the keyword research endpoints
// ABOUTME: Carries the post-merge working set plus batch statistics

package responses

// SummaryResponse aggregates the working set
type SummaryResponse struct {
	Keywords               int `json:"keywords"`
	Ranked                 int `json:"ranked"`
	TopTen                 int `json:"top_ten"`
	TotalMonthlySearches   int `json:"total_monthly_searches"`
	EstimatedDailyVisitors int `json:"estimated_daily_visitors"`
}

// AnalysisResponse is returned after an analysis call
type AnalysisResponse struct {
	// Rows is the working set after merging the new batch
	Rows []KeywordInsightResponse `json:"rows"`

	// Added is how many normalized rows the provider contributed
	Added int `json:"added"`

	// Dropped is how many raw rows failed normalization
	Dropped int `json:"dropped"`

	// Warning is set when the provider succeeded but no rows were usable
	Warning string `json:"warning,omitempty"`

	// Summary aggregates the post-merge working set
	Summary SummaryResponse `json:"summary"`
}

// WorkingSetResponse is the filtered, sorted working set view
type WorkingSetResponse struct {
	Rows    []KeywordInsightResponse `json:"rows"`
	Summary SummaryResponse          `json:"summary"`
}
