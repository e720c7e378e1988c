package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps collections in process memory. Records are stored encoded so
// callers never share slices with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]json.RawMessage
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]json.RawMessage)}
}

// Load decodes a stored collection into out
func (s *MemoryStore) Load(collection string, out interface{}) error {
	s.mu.RLock()
	parts := s.collections[collection]
	s.mu.RUnlock()
	return joinRecords(parts, out)
}

// Save replaces a stored collection
func (s *MemoryStore) Save(collection string, records interface{}) error {
	parts, err := splitRecords(records)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.collections[collection] = parts
	s.mu.Unlock()
	return nil
}

// Ping always succeeds
func (s *MemoryStore) Ping() error {
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}
