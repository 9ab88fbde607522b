// ABOUTME: Tests for case-insensitive keyword filtering
// ABOUTME: Blank queries match the whole working set

package research

import (
	"testing"

	"keyword-intel-api/core/domain"
)

func TestFilterCaseInsensitive(t *testing.T) {
	rows := []domain.KeywordInsight{
		insight("Buy Shoes", nil),
		insight("running gear", nil),
		insight("shoe repair", nil),
	}

	got := Filter(rows, "SHOE")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Keyword != "Buy Shoes" || got[1].Keyword != "shoe repair" {
		t.Errorf("filtered = %v", got)
	}
}

func TestFilterBlankQueryMatchesAll(t *testing.T) {
	rows := []domain.KeywordInsight{insight("a", nil), insight("b", nil)}
	if got := Filter(rows, "  "); len(got) != 2 {
		t.Errorf("len = %d, want all rows", len(got))
	}
}

func TestFilterNoMatches(t *testing.T) {
	rows := []domain.KeywordInsight{insight("a", nil)}
	if got := Filter(rows, "zzz"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
