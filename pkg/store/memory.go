package store

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/avulnerador/RogueMap-Gen/pkg/document"
)

// MemoryStore keeps documents in memory. Documents are copied on the way in
// and out, so callers never share map state with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]document.Document
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]document.Document)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.docs[id]
	if !ok {
		return document.Document{}, ErrNotFound
	}
	return clone(d), nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, d document.Document) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = clone(d)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.docs)), nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)

func clone(d document.Document) document.Document {
	d.SetMap(d.Map())
	d.NodeTypes = maps.Clone(d.NodeTypes)
	d.AvailableIcons = slices.Clone(d.AvailableIcons)
	return d
}
