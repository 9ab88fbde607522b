// ABOUTME: Difficulty label normalization from free-text provider values
// ABOUTME: Buckets by case-insensitive substring with a fixed priority order

package normalize

import (
	"strings"

	"keyword-intel-api/core/domain"
)

// DifficultyLevel buckets a free-text difficulty label. Matching is
// case-insensitive by substring, checked in priority order: "very" before
// "hard" so "very hard" lands in the stronger bucket. Non-string or
// unrecognized inputs yield nil.
func DifficultyLevel(v interface{}) *domain.Difficulty {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	lower := strings.ToLower(s)

	var d domain.Difficulty
	switch {
	case strings.Contains(lower, "very"):
		d = domain.DifficultyVeryHard
	case strings.Contains(lower, "hard"):
		d = domain.DifficultyHard
	case strings.Contains(lower, "medium"), strings.Contains(lower, "moderate"):
		d = domain.DifficultyMedium
	case strings.Contains(lower, "easy"), strings.Contains(lower, "low"):
		d = domain.DifficultyEasy
	default:
		return nil
	}
	return &d
}
