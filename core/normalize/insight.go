// ABOUTME: Raw provider row normalization into canonical keyword insights
// ABOUTME: Per-row typed outcomes aggregated into a batch drop report

package normalize

import (
	"fmt"
	"math"

	"keyword-intel-api/core/domain"
)

// TopSpotShare is the assumed share of monthly search volume landing on the
// top organic result. It is an estimation placeholder, not a validated CTR
// curve; swap the estimator in Config to change the model.
const TopSpotShare = 0.32

// VisitorEstimator derives a daily-visitor estimate from a monthly search
// volume when the provider gives no explicit figure
type VisitorEstimator func(monthlySearches int) int

// DefaultVisitorEstimator spreads TopSpotShare of the monthly volume over a
// 30-day month
func DefaultVisitorEstimator(monthlySearches int) int {
	v := int(math.Round(float64(monthlySearches) * TopSpotShare / 30))
	if v < 0 {
		v = 0
	}
	return v
}

// Config controls how raw rows are normalized
type Config struct {
	Aliases          AliasTable
	EstimateVisitors VisitorEstimator
}

// DefaultConfig returns the standard research normalization setup
func DefaultConfig() Config {
	return Config{
		Aliases:          ResearchAliases,
		EstimateVisitors: DefaultVisitorEstimator,
	}
}

// RowError records why a single raw row was dropped during normalization
type RowError struct {
	Index  int
	Reason string
}

// Error implements the error interface
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d dropped: %s", e.Index, e.Reason)
}

// BatchResult aggregates a normalization pass over a raw batch
type BatchResult struct {
	Rows    []domain.KeywordInsight
	Dropped int
	Errors  []RowError
}

// Insight normalizes one raw provider row into the canonical schema.
// Rows without a usable keyword are rejected with a RowError.
func Insight(raw map[string]interface{}, cfg Config) (domain.KeywordInsight, error) {
	keyword, ok := cfg.Aliases.LookupString(raw, "keyword")
	if !ok {
		return domain.KeywordInsight{}, &RowError{Reason: "empty keyword"}
	}

	insight := domain.KeywordInsight{Keyword: keyword}

	if page, ok := cfg.Aliases.LookupString(raw, "ranking_page"); ok {
		insight.RankingPage = &page
	}
	if v, ok := cfg.Aliases.Lookup(raw, "ranking_position"); ok {
		insight.RankingPosition = Number(v)
	}
	if v, ok := cfg.Aliases.Lookup(raw, "ranking_page_number"); ok {
		insight.RankingPageNumber = Number(v)
	}
	if v, ok := cfg.Aliases.Lookup(raw, "monthly_searches"); ok {
		insight.MonthlySearches = Number(v)
	}

	if v, ok := cfg.Aliases.Lookup(raw, "daily_visitors"); ok {
		insight.DailyVisitors = Number(v)
	}
	if insight.DailyVisitors == nil && insight.MonthlySearches != nil {
		estimate := cfg.EstimateVisitors(*insight.MonthlySearches)
		insight.DailyVisitors = &estimate
	}

	if v, ok := cfg.Aliases.Lookup(raw, "difficulty"); ok {
		insight.Difficulty = DifficultyLevel(v)
	}
	if v, ok := cfg.Aliases.Lookup(raw, "top_competitors"); ok {
		insight.TopCompetitors = Competitors(v)
	}

	return insight, nil
}

// InsightBatch normalizes a raw batch, collecting dropped-row errors instead
// of failing the whole pass. Row order is preserved for surviving rows.
func InsightBatch(raws []map[string]interface{}, cfg Config) BatchResult {
	result := BatchResult{}
	for i, raw := range raws {
		insight, err := Insight(raw, cfg)
		if err != nil {
			result.Dropped++
			var rowErr *RowError
			if re, ok := err.(*RowError); ok {
				rowErr = re
			} else {
				rowErr = &RowError{Reason: err.Error()}
			}
			rowErr.Index = i
			result.Errors = append(result.Errors, *rowErr)
			continue
		}
		result.Rows = append(result.Rows, insight)
	}
	return result
}
