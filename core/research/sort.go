// ABOUTME: Stable sorting of insight rows by display column
// ABOUTME: Missing numeric values sort last regardless of direction

package research

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"keyword-intel-api/core/domain"
)

// SortKey names a sortable display column
type SortKey string

const (
	SortByKeyword         SortKey = "keyword"
	SortByPosition        SortKey = "ranking_position"
	SortByPageNumber      SortKey = "ranking_page_number"
	SortByCompetitorCount SortKey = "top_competitors_count"
	SortByMonthlySearches SortKey = "monthly_searches"
	SortByDailyVisitors   SortKey = "daily_visitors"
	SortByDifficultyScore SortKey = "difficulty_score"
)

// Direction is the sort direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ValidSortKey reports whether key names a sortable column
func ValidSortKey(key SortKey) bool {
	switch key {
	case SortByKeyword, SortByPosition, SortByPageNumber, SortByCompetitorCount,
		SortByMonthlySearches, SortByDailyVisitors, SortByDifficultyScore:
		return true
	}
	return false
}

// sortValue maps a row to its numeric sort value for a key. Absent values map
// to +Inf so they land after present values in both directions.
func sortValue(row domain.KeywordInsight, key SortKey) float64 {
	var v *int
	switch key {
	case SortByPosition:
		v = row.RankingPosition
	case SortByPageNumber:
		v = row.RankingPageNumber
	case SortByMonthlySearches:
		v = row.MonthlySearches
	case SortByDailyVisitors:
		v = row.DailyVisitors
	case SortByCompetitorCount:
		n := row.CompetitorCount()
		return float64(n)
	case SortByDifficultyScore:
		if row.Difficulty == nil {
			return math.Inf(1)
		}
		return float64(row.Difficulty.Score())
	}
	if v == nil {
		return math.Inf(1)
	}
	return float64(*v)
}

// SortRows returns a stably sorted copy of rows. The keyword column compares
// with a locale-aware collator; numeric columns compare through sortValue, so
// rows missing the column always sort last, even descending.
func SortRows(rows []domain.KeywordInsight, key SortKey, dir Direction) []domain.KeywordInsight {
	sorted := make([]domain.KeywordInsight, len(rows))
	copy(sorted, rows)

	if key == SortByKeyword {
		coll := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			cmp := coll.CompareString(sorted[i].Keyword, sorted[j].Keyword)
			if dir == Descending {
				return cmp > 0
			}
			return cmp < 0
		})
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		vi, vj := sortValue(sorted[i], key), sortValue(sorted[j], key)
		if math.IsInf(vi, 1) || math.IsInf(vj, 1) {
			// missing values lose to present ones in either direction
			return !math.IsInf(vi, 1) && math.IsInf(vj, 1)
		}
		if dir == Descending {
			return vi > vj
		}
		return vi < vj
	})
	return sorted
}
