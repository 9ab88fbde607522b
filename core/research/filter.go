// ABOUTME: Substring filtering over the insight working set
// ABOUTME: Case-insensitive containment match on the keyword field

package research

import (
	"strings"

	"keyword-intel-api/core/domain"
)

// Filter returns the rows whose keyword contains the query, ignoring case.
// A blank query matches everything.
func Filter(rows []domain.KeywordInsight, query string) []domain.KeywordInsight {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return rows
	}

	var out []domain.KeywordInsight
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Keyword), query) {
			out = append(out, row)
		}
	}
	return out
}
