package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/bordermap/internal/core/domain"
	"github.com/custodia-labs/bordermap/internal/core/ports/driven"
)

// Ensure MapStore implements the interface.
var _ driven.MapStore = (*MapStore)(nil)

// MapStore is an in-memory implementation of driven.MapStore keyed by path.
type MapStore struct {
	mu   sync.RWMutex
	docs map[string]domain.MapSnapshot
}

// NewMapStore creates a new in-memory map store.
func NewMapStore() *MapStore {
	return &MapStore{
		docs: make(map[string]domain.MapSnapshot),
	}
}

// Load returns a copy of the document saved at path.
func (s *MapStore) Load(_ context.Context, path string) (*domain.MapSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.docs[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	}
	out := snap.Clone()
	return &out, nil
}

// Save stores a copy of the document at path.
func (s *MapStore) Save(_ context.Context, path string, snap *domain.MapSnapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = snap.Clone()
	return nil
}

// Exists reports whether a document was saved at path.
func (s *MapStore) Exists(_ context.Context, path string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[path]
	return ok, nil
}

// Len returns the number of stored documents.
func (s *MapStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
