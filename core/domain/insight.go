// ABOUTME: Canonical keyword insight model shared by all provider schemas
// ABOUTME: Defines the unified record provider rows are normalized into

package domain

// Difficulty is the canonical ranking-difficulty bucket
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// Score maps the bucket to its ordinal rank (easy=1 .. very_hard=4).
// Unknown values score 0.
func (d Difficulty) Score() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyVeryHard:
		return 4
	}
	return 0
}

// MaxTopCompetitors caps the competitor list on a single insight
const MaxTopCompetitors = 10

// KeywordInsight is the canonical research record. The lower-cased keyword is
// the unique key within any insight collection; all numeric fields are
// non-negative or nil.
type KeywordInsight struct {
	// Keyword is the trimmed search term, unique per collection (case-insensitive)
	Keyword string `json:"keyword"`

	// RankingPage is the URL currently ranking for the keyword, if known
	RankingPage *string `json:"ranking_page"`

	// RankingPosition is the organic position, if known
	RankingPosition *int `json:"ranking_position"`

	// RankingPageNumber is the results page the position falls on, if known
	RankingPageNumber *int `json:"ranking_page_number"`

	// MonthlySearches is the estimated monthly search volume, if known
	MonthlySearches *int `json:"monthly_searches"`

	// DailyVisitors is the estimated daily visitors for the top spot; either
	// provider-supplied or derived from MonthlySearches
	DailyVisitors *int `json:"daily_visitors"`

	// TopCompetitors lists competing URLs, deduplicated, at most MaxTopCompetitors
	TopCompetitors []string `json:"top_competitors"`

	// Difficulty is the normalized difficulty bucket, nil when unknown
	Difficulty *Difficulty `json:"difficulty"`
}

// CompetitorCount returns the number of known competitors
func (k KeywordInsight) CompetitorCount() int {
	return len(k.TopCompetitors)
}
