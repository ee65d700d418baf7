// Package locations keeps the user's saved-location list: an ordered
// sequence of unique canonical location names, hydrated once from a
// persisted slot at startup and fully re-persisted on every mutation.
package locations

import (
	"encoding/json"
	"log"
	"sync"
)

// Store owns the saved-location list and is the sole writer of the
// persisted slot. De-duplication and removal use exact string match on
// the canonical name returned by the weather provider.
type Store struct {
	mu      sync.Mutex
	backend Backend
	names   []string
}

// NewStore hydrates the list from the backend. An absent or corrupt
// payload yields an empty list; hydration never fails the caller.
func NewStore(backend Backend) *Store {
	s := &Store{backend: backend}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	if s.backend == nil {
		return
	}

	data, err := s.backend.Load()
	if err != nil {
		log.Printf("INFO: locations: could not load persisted list: %v", err)
		return
	}
	if len(data) == 0 {
		return
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("INFO: locations: discarding corrupt persisted list: %v", err)
		return
	}
	s.names = names
}

// List returns a copy of the saved names in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Contains reports whether name is already saved.
func (s *Store) Contains(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Add appends name unless it is already present, then re-persists.
// It reports whether the list changed.
func (s *Store) Add(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.names {
		if n == name {
			return false
		}
	}
	s.names = append(s.names, name)
	s.persistLocked()
	return true
}

// Remove drops every exact-match occurrence of name, preserving the
// relative order of the rest, then re-persists. It reports whether the
// list changed.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.names[:0]
	removed := false
	for _, n := range s.names {
		if n == name {
			removed = true
			continue
		}
		kept = append(kept, n)
	}
	if !removed {
		return false
	}
	s.names = kept
	s.persistLocked()
	return true
}

// persistLocked writes the full list. A persist failure is logged and
// the in-memory mutation stands; storage is best-effort.
func (s *Store) persistLocked() {
	if s.backend == nil {
		return
	}

	data, err := json.Marshal(s.names)
	if err != nil {
		log.Printf("ERROR: locations: marshal saved list: %v", err)
		return
	}
	if err := s.backend.Save(data); err != nil {
		log.Printf("ERROR: locations: persist saved list: %v", err)
	}
}
