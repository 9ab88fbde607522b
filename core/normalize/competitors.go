// ABOUTME: Competitor list normalization from list or delimited-string inputs
// ABOUTME: Trims, deduplicates and caps entries in encountered order

package normalize

import (
	"strings"

	"keyword-intel-api/core/domain"
)

// Competitors extracts a competitor URL list from a provider value. Accepts
// either a list of strings/objects (objects contribute their first non-empty
// url, link or href field) or a newline/comma-delimited string. Entries are
// trimmed, empties dropped, duplicates removed, and the result is capped at
// domain.MaxTopCompetitors in encountered order.
func Competitors(v interface{}) []string {
	var candidates []string

	switch raw := v.(type) {
	case []interface{}:
		for _, item := range raw {
			switch entry := item.(type) {
			case string:
				candidates = append(candidates, entry)
			case map[string]interface{}:
				for _, key := range []string{"url", "link", "href"} {
					if s, ok := entry[key].(string); ok && strings.TrimSpace(s) != "" {
						candidates = append(candidates, s)
						break
					}
				}
			}
		}
	case []string:
		candidates = raw
	case string:
		candidates = strings.FieldsFunc(raw, func(r rune) bool {
			return r == '\n' || r == ','
		})
	}

	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
		if len(out) == domain.MaxTopCompetitors {
			break
		}
	}
	return out
}
