// Package session keeps the last generated trajectory of each client so it
// can be exported without regenerating it.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	camprofile "github.com/tphakala/go-cam-profile"
)

type entry struct {
	table   *camprofile.Table
	expires time.Time
}

// Store is an in-memory, TTL-bounded map from session id to table.
// It is safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	max     int
	now     func() time.Time
}

// NewStore creates a store. Entries expire ttl after their last write; once
// max entries are held, the entry closest to expiry is evicted.
func NewStore(ttl time.Duration, max int) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		max:     max,
		now:     time.Now,
	}
}

// NewID returns a fresh random session id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id looks like an id produced by NewID.
func ValidID(id string) bool {
	return uuid.Validate(id) == nil
}

// Put stores table as the latest result of session id.
func (s *Store) Put(id string, table *camprofile.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if _, ok := s.entries[id]; !ok && s.max > 0 && len(s.entries) >= s.max {
		s.evictOldestLocked()
	}

	s.entries[id] = entry{table: table, expires: now.Add(s.ttl)}
}

// Get returns the latest table of session id.
func (s *Store) Get(id string) (*camprofile.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if !s.now().Before(e.expires) {
		delete(s.entries, id)
		return nil, false
	}
	return e.table, true
}

// Len returns the number of stored sessions, expired ones included until
// the next write.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
		}
	}
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, e := range s.entries {
		if oldestID == "" || e.expires.Before(oldest) {
			oldestID, oldest = id, e.expires
		}
	}
	delete(s.entries, oldestID)
}
