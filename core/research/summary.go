// ABOUTME: Aggregate statistics over the insight working set
// ABOUTME: Computed fresh from a snapshot, never stored

package research

import "keyword-intel-api/core/domain"

// Summary holds aggregate figures for a set of insights
type Summary struct {
	Keywords               int `json:"keywords"`
	Ranked                 int `json:"ranked"`
	TopTen                 int `json:"top_ten"`
	TotalMonthlySearches   int `json:"total_monthly_searches"`
	EstimatedDailyVisitors int `json:"estimated_daily_visitors"`
}

// Summarize computes aggregate figures over rows
func Summarize(rows []domain.KeywordInsight) Summary {
	s := Summary{Keywords: len(rows)}
	for _, row := range rows {
		if row.RankingPosition != nil {
			s.Ranked++
			if *row.RankingPosition <= 10 {
				s.TopTen++
			}
		}
		if row.MonthlySearches != nil {
			s.TotalMonthlySearches += *row.MonthlySearches
		}
		if row.DailyVisitors != nil {
			s.EstimatedDailyVisitors += *row.DailyVisitors
		}
	}
	return s
}
