// ABOUTME: CSV export of the insight working set with fixed columns
// ABOUTME: Every field is force-quoted with internal quotes doubled

package research

import (
	"strconv"
	"strings"

	"keyword-intel-api/core/domain"
)

// csvHeader is the fixed export column order
var csvHeader = []string{
	"keyword",
	"ranking_page",
	"ranking_position",
	"ranking_page_number",
	"top_competitors",
	"monthly_searches",
	"daily_visitors",
	"difficulty",
}

// ExportCSV serializes rows into CSV with the fixed header columns and
// returns the file name alongside the content. Every value is wrapped in
// double quotes with internal quotes doubled; competitors are joined with
// " | ". A blank dataset name falls back to "research".
func ExportCSV(rows []domain.KeywordInsight, datasetName string) (string, []byte) {
	name := strings.TrimSpace(datasetName)
	if name == "" {
		name = "research"
	}

	var b strings.Builder
	writeRecord(&b, csvHeader)

	for _, row := range rows {
		writeRecord(&b, []string{
			row.Keyword,
			stringOrEmpty(row.RankingPage),
			intOrEmpty(row.RankingPosition),
			intOrEmpty(row.RankingPageNumber),
			strings.Join(row.TopCompetitors, " | "),
			intOrEmpty(row.MonthlySearches),
			intOrEmpty(row.DailyVisitors),
			difficultyOrEmpty(row.Difficulty),
		})
	}

	return name + ".csv", []byte(b.String())
}

func writeRecord(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func difficultyOrEmpty(d *domain.Difficulty) string {
	if d == nil {
		return ""
	}
	return string(*d)
}
