// Package cache memoizes full assessments keyed by the canonical form of a
// skill set. Scoring is pure and deterministic, so entries are write-once per
// key: a race between two identical requests costs at most one redundant
// computation, never an inconsistent result.
package cache

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pathforge/rolefit/internal/readiness"
)

// Key is the canonical, order-independent identity of a skill set.
type Key string

// KeyFor derives a key from a skill set. The set's pairs are sorted by skill
// name, so two inputs with the same skills in different order collapse to the
// same key.
func KeyFor(set readiness.SkillSet) Key {
	pairs := set.Pairs()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%d", p.Skill, p.Level)
	}
	return Key(strings.Join(parts, "|"))
}

// Store is an unbounded in-memory assessment cache, safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[Key][]readiness.RoleAssessment
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[Key][]readiness.RoleAssessment)}
}

// GetOrCompute returns the cached assessments for key, computing and storing
// them on a miss. With forceRefresh the lookup is skipped but the fresh
// result is still written back under the same key, so forced and cached
// paths can never diverge.
func (s *Store) GetOrCompute(key Key, forceRefresh bool, compute func() []readiness.RoleAssessment) []readiness.RoleAssessment {
	if !forceRefresh {
		s.mu.RLock()
		cached, ok := s.entries[key]
		s.mu.RUnlock()
		if ok {
			return cached
		}
	}

	result := compute()

	s.mu.Lock()
	s.entries[key] = result
	s.mu.Unlock()
	return result
}

// Len reports how many skill sets are cached.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
