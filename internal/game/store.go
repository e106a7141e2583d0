package game

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

// storedMatch pairs a match with the mutex that serializes its mutations.
type storedMatch struct {
	mu    sync.Mutex
	match *Match
}

// Store holds every live match of the process. The map lock is only held to
// look an entry up; all game logic runs under the per-match lock, so
// independent matches never wait on each other.
type Store struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	matches map[string]*storedMatch
}

// NewStore creates an empty store.
func NewStore(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		logger:  logger,
		matches: make(map[string]*storedMatch),
	}
}

// put registers a new match. Match ids are unique.
func (s *Store) put(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.matches[m.ID]; exists {
		return illegal("match %s already exists", m.ID)
	}
	s.matches[m.ID] = &storedMatch{match: m}
	s.logger.Debug("match stored", zap.String("match_id", m.ID), zap.Int("matches", len(s.matches)))
	return nil
}

// with runs fn while holding the match's lock.
func (s *Store) with(id string, fn func(*Match) error) error {
	s.mu.RLock()
	entry, exists := s.matches[id]
	s.mu.RUnlock()
	if !exists {
		return notFound("match %s not found", id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.match)
}

// Delete drops a match. It reports whether the match existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.matches[id]; !exists {
		return false
	}
	delete(s.matches, id)
	s.logger.Debug("match deleted", zap.String("match_id", id), zap.Int("matches", len(s.matches)))
	return true
}

// Len returns the number of stored matches.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matches)
}

// IDs returns the stored match ids, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.matches))
	for id := range s.matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
