// ABOUTME: Mappers converting core domain models to response DTOs
// ABOUTME: Keeps wire shapes independent from the domain structs

package mappers

import (
	"keyword-intel-api/api/dto/responses"
	"keyword-intel-api/core/domain"
	"keyword-intel-api/core/research"
)

// ToInsightResponse maps a canonical insight to its wire form
func ToInsightResponse(insight domain.KeywordInsight) responses.KeywordInsightResponse {
	resp := responses.KeywordInsightResponse{
		Keyword:           insight.Keyword,
		RankingPage:       insight.RankingPage,
		RankingPosition:   insight.RankingPosition,
		RankingPageNumber: insight.RankingPageNumber,
		MonthlySearches:   insight.MonthlySearches,
		DailyVisitors:     insight.DailyVisitors,
		TopCompetitors:    insight.TopCompetitors,
	}
	if insight.Difficulty != nil {
		d := string(*insight.Difficulty)
		resp.Difficulty = &d
	}
	return resp
}

// ToInsightResponses maps a slice of insights
func ToInsightResponses(insights []domain.KeywordInsight) []responses.KeywordInsightResponse {
	out := make([]responses.KeywordInsightResponse, len(insights))
	for i, insight := range insights {
		out[i] = ToInsightResponse(insight)
	}
	return out
}

// ToDiscoveryRowResponse maps a discovery row to its wire form
func ToDiscoveryRowResponse(row domain.DiscoveryRow) responses.DiscoveryRowResponse {
	return responses.DiscoveryRowResponse{
		Keyword:           row.Keyword,
		RankingPage:       row.RankingPage,
		RankingPosition:   row.RankingPosition,
		RankingPageNumber: row.RankingPageNumber,
		MonthlySearches:   row.MonthlySearches,
		TrafficEstimate:   row.TrafficEstimate,
		EstimatedPosition: row.EstimatedPosition,
		Notes:             row.Notes,
		Estimated:         row.Estimated,
	}
}

// ToDiscoveryRowResponses maps a slice of discovery rows
func ToDiscoveryRowResponses(rows []domain.DiscoveryRow) []responses.DiscoveryRowResponse {
	out := make([]responses.DiscoveryRowResponse, len(rows))
	for i, row := range rows {
		out[i] = ToDiscoveryRowResponse(row)
	}
	return out
}

// ToSummaryResponse maps working set aggregates to the wire form
func ToSummaryResponse(summary research.Summary) responses.SummaryResponse {
	return responses.SummaryResponse{
		Keywords:               summary.Keywords,
		Ranked:                 summary.Ranked,
		TopTen:                 summary.TopTen,
		TotalMonthlySearches:   summary.TotalMonthlySearches,
		EstimatedDailyVisitors: summary.EstimatedDailyVisitors,
	}
}
