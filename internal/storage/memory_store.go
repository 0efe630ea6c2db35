package storage

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used in tests and as a fallback when
// no database path is configured. FailKeys forces ErrQuotaExceeded for
// selected keys so quota-degradation paths can be exercised.
type MemoryStore struct {
	mu       sync.Mutex
	blobs    map[string][]byte
	FailKeys map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailKeys[key] {
		return fmt.Errorf("%w: key %q", ErrQuotaExceeded, key)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}

// Has reports whether a key currently holds a blob.
func (s *MemoryStore) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.blobs[key]
	return ok
}
