package cart

import (
	"context"
	"sync"
)

// MemoryStore keeps carts in process memory, keyed by owner. The mutex guards
// the cross-owner map; individual carts still have a single writer.
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: map[string][]Entry{}}
}

func (s *MemoryStore) Get(_ context.Context, ownerID string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]Entry, len(s.carts[ownerID]))
	copy(entries, s.carts[ownerID])
	return entries, nil
}

func (s *MemoryStore) Add(_ context.Context, ownerID string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[ownerID] = append(s.carts[ownerID], entry)
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, ownerID, entryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.carts[ownerID]
	for i, entry := range entries {
		if entry.ID == entryID {
			s.carts[ownerID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

func (s *MemoryStore) Clear(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, ownerID)
	return nil
}
