// ABOUTME: Declarative field-alias tables for provider schema variations
// ABOUTME: Maps canonical field names to raw names so drift is handled by data

package normalize

import "strings"

// AliasTable maps canonical field names to the raw field names a provider
// schema might use for them, in priority order. Tables are versioned so a
// provider format change becomes a table edit, not a parser change.
type AliasTable struct {
	Version int
	Fields  map[string][]string
}

// Lookup returns the first present, non-nil raw value for a canonical field
func (t AliasTable) Lookup(row map[string]interface{}, canonical string) (interface{}, bool) {
	for _, alias := range t.Fields[canonical] {
		if v, ok := row[alias]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// LookupString returns the first non-empty trimmed string value for a
// canonical field, skipping aliases holding non-string or blank values
func (t AliasTable) LookupString(row map[string]interface{}, canonical string) (string, bool) {
	for _, alias := range t.Fields[canonical] {
		v, ok := row[alias]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			continue
		}
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			return trimmed, true
		}
	}
	return "", false
}

// ResearchAliases is the alias table for keyword-research analysis rows
var ResearchAliases = AliasTable{
	Version: 1,
	Fields: map[string][]string{
		"keyword":             {"keyword"},
		"ranking_page":        {"ranking_page", "ranking_url", "url", "page"},
		"ranking_position":    {"ranking_position", "position", "rank"},
		"ranking_page_number": {"ranking_page_number", "page_number"},
		"monthly_searches":    {"monthly_searches", "search_volume", "volume"},
		"daily_visitors":      {"daily_visitors", "estimated_visitors"},
		"difficulty":          {"difficulty", "competition"},
		"top_competitors":     {"top_competitors", "competitors"},
	},
}

// DiscoveryAliases is the alias table for ranking-discovery rows
var DiscoveryAliases = AliasTable{
	Version: 1,
	Fields: map[string][]string{
		"keyword":             {"keyword", "term", "search_term"},
		"ranking_page":        {"ranking_page", "ranking_url", "url", "page"},
		"ranking_position":    {"ranking_position", "position", "rank", "google_rank", "serp_position"},
		"estimated_position":  {"estimated_position"},
		"ranking_page_number": {"ranking_page_number", "page_number", "google_page", "serp_page"},
		"monthly_searches":    {"monthly_searches", "search_volume", "volume"},
		"traffic_estimate":    {"traffic_estimate", "traffic", "estimated_visitors"},
		"notes":               {"notes"},
	},
}
