// ABOUTME: Ranking-discovery row normalization with first-wins deduplication
// ABOUTME: Estimated positions survive only when no exact position is known

package normalize

import (
	"strings"

	"keyword-intel-api/core/domain"
)

// DiscoveryBatchResult aggregates a normalization pass over discovery rows
type DiscoveryBatchResult struct {
	Rows    []domain.DiscoveryRow
	Dropped int
	Errors  []RowError
}

// DiscoveryRow normalizes one raw discovery row. An estimated position is
// kept only when no exact ranking position is present; such rows are flagged
// as estimated for display.
func DiscoveryRow(raw map[string]interface{}) (domain.DiscoveryRow, error) {
	keyword, ok := DiscoveryAliases.LookupString(raw, "keyword")
	if !ok {
		return domain.DiscoveryRow{}, &RowError{Reason: "empty keyword"}
	}

	row := domain.DiscoveryRow{Keyword: keyword}

	if page, ok := DiscoveryAliases.LookupString(raw, "ranking_page"); ok {
		row.RankingPage = &page
	}
	if v, ok := DiscoveryAliases.Lookup(raw, "ranking_position"); ok {
		row.RankingPosition = Number(v)
	}
	if v, ok := DiscoveryAliases.Lookup(raw, "ranking_page_number"); ok {
		row.RankingPageNumber = Number(v)
	}
	if v, ok := DiscoveryAliases.Lookup(raw, "monthly_searches"); ok {
		row.MonthlySearches = Number(v)
	}
	if v, ok := DiscoveryAliases.Lookup(raw, "traffic_estimate"); ok {
		row.TrafficEstimate = Number(v)
	}
	if notes, ok := DiscoveryAliases.LookupString(raw, "notes"); ok {
		row.Notes = &notes
	}

	if row.RankingPosition == nil {
		if v, ok := DiscoveryAliases.Lookup(raw, "estimated_position"); ok {
			if est := Number(v); est != nil {
				row.EstimatedPosition = est
				row.Estimated = true
			}
		}
	}

	return row, nil
}

// DiscoveryBatch normalizes a raw discovery response and deduplicates rows by
// lower-cased keyword, keeping the first occurrence. Each discovery call
// replaces the displayed set; batches are never merged across calls.
func DiscoveryBatch(raws []map[string]interface{}) DiscoveryBatchResult {
	result := DiscoveryBatchResult{}
	seen := make(map[string]struct{}, len(raws))

	for i, raw := range raws {
		row, err := DiscoveryRow(raw)
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

		key := strings.ToLower(row.Keyword)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		result.Rows = append(result.Rows, row)
	}
	return result
}
