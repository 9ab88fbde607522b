// ABOUTME: Tests for stable display sorting
// ABOUTME: Missing values must land last in both directions

package research

import (
	"testing"

	"keyword-intel-api/core/domain"
)

func positions(rows []domain.KeywordInsight) []interface{} {
	var out []interface{}
	for _, r := range rows {
		if r.RankingPosition == nil {
			out = append(out, nil)
		} else {
			out = append(out, *r.RankingPosition)
		}
	}
	return out
}

func TestSortRowsMissingLastAscending(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("c", nil),
		insight("a", intPtr(5)),
		insight("b", intPtr(2)),
	}

	sorted := SortRows(rows, SortByPosition, Ascending)
	if sorted[0].Keyword != "b" || sorted[1].Keyword != "a" || sorted[2].Keyword != "c" {
		t.Errorf("ascending order wrong: %v", positions(sorted))
	}
}

func TestSortRowsMissingLastDescending(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("c", nil),
		insight("a", intPtr(5)),
		insight("b", intPtr(2)),
	}

	sorted := SortRows(rows, SortByPosition, Descending)
	if sorted[0].Keyword != "a" || sorted[1].Keyword != "b" {
		t.Errorf("descending order wrong: %v", positions(sorted))
	}
	if sorted[2].RankingPosition != nil {
		t.Errorf("missing value should sort last descending, got %v", positions(sorted))
	}
}

func TestSortRowsStableForEqualKeys(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("first", intPtr(3)),
		insight("second", intPtr(3)),
		insight("third", intPtr(3)),
	}

	sorted := SortRows(rows, SortByPosition, Ascending)
	if sorted[0].Keyword != "first" || sorted[1].Keyword != "second" || sorted[2].Keyword != "third" {
		t.Errorf("equal keys reordered: %v", sorted)
	}
}

func TestSortRowsKeyword(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("banana", nil),
		insight("Apple", nil),
		insight("cherry", nil),
	}

	sorted := SortRows(rows, SortByKeyword, Ascending)
	if sorted[0].Keyword != "Apple" || sorted[1].Keyword != "banana" || sorted[2].Keyword != "cherry" {
		t.Errorf("keyword sort wrong: %v", sorted)
	}

	sorted = SortRows(rows, SortByKeyword, Descending)
	if sorted[0].Keyword != "cherry" {
		t.Errorf("descending keyword sort wrong: %v", sorted)
	}
}

func TestSortRowsDifficultyScore(t *testing.T) {
	easy, hard := domain.DifficultyEasy, domain.DifficultyVeryHard
	rows := []domain.KeywordInsight{
		{Keyword: "unknown"},
		{Keyword: "tough", Difficulty: &hard},
		{Keyword: "simple", Difficulty: &easy},
	}

	sorted := SortRows(rows, SortByDifficultyScore, Ascending)
	if sorted[0].Keyword != "simple" || sorted[1].Keyword != "tough" || sorted[2].Keyword != "unknown" {
		t.Errorf("difficulty sort wrong: %v", sorted)
	}
}

func TestSortRowsCompetitorCount(t *testing.T) {
	rows := []domain.KeywordInsight{
		{Keyword: "many", TopCompetitors: []string{"a", "b", "c"}},
		{Keyword: "none"},
		{Keyword: "one", TopCompetitors: []string{"a"}},
	}

	sorted := SortRows(rows, SortByCompetitorCount, Descending)
	if sorted[0].Keyword != "many" || sorted[1].Keyword != "one" || sorted[2].Keyword != "none" {
		t.Errorf("competitor count sort wrong: %v", sorted)
	}
}

func TestSortRowsLeavesInputUntouched(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("b", intPtr(2)),
		insight("a", intPtr(1)),
	}

	SortRows(rows, SortByPosition, Ascending)
	if rows[0].Keyword != "b" {
		t.Error("SortRows mutated its input")
	}
}
