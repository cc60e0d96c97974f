// Package session keeps per-browser conversion results in memory. Results
// live only for the session that produced them; nothing is ever persisted.
package session

import (
	"sync"
	"time"

	"github.com/NIACK18/office-to-markdown-app/internal/domain/models"
)

type entry struct {
	result    *models.ConversionResult
	expiresAt time.Time
}

// Store maps session IDs to their latest conversion result. Entries expire
// a fixed TTL after the write that created them; expiry is enforced lazily
// on access and opportunistically on writes. There is no background sweeper.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

// NewStore creates an empty store with the given entry TTL.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
	}
}

// Put stores the session's result, replacing any previous one. Expired
// entries left behind by idle sessions are dropped on the way.
func (s *Store) Put(sessionID string, result *models.ConversionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[sessionID] = entry{
		result:    result,
		expiresAt: now.Add(s.ttl),
	}
}

// Get returns the session's current result. A missing or expired entry
// reports false; expired entries are removed on access.
func (s *Store) Get(sessionID string) (*models.ConversionResult, bool) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; a Put may have refreshed the entry.
		if cur, ok := s.entries[sessionID]; ok && time.Now().After(cur.expiresAt) {
			delete(s.entries, sessionID)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.result, true
}

// Clear removes the session's result, if any.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
}

// Len reports how many results are currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
