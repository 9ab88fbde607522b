// ABOUTME: First-wins merge of incoming insight batches into the working set
// ABOUTME: Incoming records win keyword collisions against existing ones

package research

import (
	"strings"

	"keyword-intel-api/core/domain"
)

// MergeInsights combines an incoming batch with the existing working set.
// The concatenation incoming ++ existing is walked once, keeping the first
// occurrence per lower-cased keyword. On a collision between the two lists
// the incoming record wins; within the incoming batch the first-listed
// duplicate wins. The ordering of the result is part of the contract: new
// unique entries first, then surviving old entries, in traversal order.
func MergeInsights(existing, incoming []domain.KeywordInsight) []domain.KeywordInsight {
	merged := make([]domain.KeywordInsight, 0, len(existing)+len(incoming))
	seen := make(map[string]struct{}, len(existing)+len(incoming))

	for _, list := range [2][]domain.KeywordInsight{incoming, existing} {
		for _, insight := range list {
			key := strings.ToLower(insight.Keyword)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			merged = append(merged, insight)
		}
	}
	return merged
}
