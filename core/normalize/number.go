// ABOUTME: Numeric field normalization for loosely-typed provider values
// ABOUTME: Clamps to non-negative integers and strips formatting from strings

package normalize

import (
	"math"
	"strconv"
	"strings"
)

// Number coerces a loosely-typed provider value into a non-negative integer.
// Numeric inputs are rounded to the nearest integer and clamped at zero.
// String inputs have every character outside [0-9.] stripped before parsing;
// an empty or unparsable remainder yields nil. All other types yield nil.
func Number(v interface{}) *int {
	switch n := v.(type) {
	case int:
		return clampRound(float64(n))
	case int64:
		return clampRound(float64(n))
	case float32:
		return clampRound(float64(n))
	case float64:
		return clampRound(n)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, n)
		if cleaned == "" {
			return nil
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		return clampRound(f)
	}
	return nil
}

func clampRound(f float64) *int {
	r := int(math.Round(f))
	if r < 0 {
		r = 0
	}
	return &r
}
