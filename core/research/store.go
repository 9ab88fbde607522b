// ABOUTME: In-memory working set holding the current insight collection
// ABOUTME: Hands out immutable snapshots; mutations install new snapshots

package research

import (
	"sync"

	"keyword-intel-api/core/domain"
)

// Store holds the current working set. Readers receive copies, so a snapshot
// never changes under the caller; writers install a fresh snapshot under the
// lock. Concurrent writers follow last-write-wins semantics.
type Store struct {
	mu   sync.RWMutex
	rows []domain.KeywordInsight
}

// NewStore returns an empty working set
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy of the current working set
func (s *Store) Snapshot() []domain.KeywordInsight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.KeywordInsight, len(s.rows))
	copy(out, s.rows)
	return out
}

// Replace installs rows as the new working set
func (s *Store) Replace(rows []domain.KeywordInsight) {
	copied := make([]domain.KeywordInsight, len(rows))
	copy(copied, rows)

	s.mu.Lock()
	s.rows = copied
	s.mu.Unlock()
}

// Merge folds an incoming batch into the working set with first-wins
// semantics and returns the new snapshot
func (s *Store) Merge(incoming []domain.KeywordInsight) []domain.KeywordInsight {
	s.mu.Lock()
	s.rows = MergeInsights(s.rows, incoming)
	merged := make([]domain.KeywordInsight, len(s.rows))
	copy(merged, s.rows)
	s.mu.Unlock()

	return merged
}

// Clear empties the working set
func (s *Store) Clear() {
	s.mu.Lock()
	s.rows = nil
	s.mu.Unlock()
}

// Len returns the current working set size
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}
