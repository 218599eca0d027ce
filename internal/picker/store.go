package picker

import (
	"context"
	"sync"

	"github.com/akyairhashvil/calpick/internal/calendar"
)

// Store keeps a picker's working selection between redraws, keyed by the
// picker's instance key.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=picker
type Store interface {
	LoadSelection(ctx context.Context, key string) (calendar.Selection, bool, error)
	StoreSelection(ctx context.Context, key string, sel calendar.Selection) error
}

// MemoryStore is an in-process Store. It is safe for use by several pickers.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]calendar.Selection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]calendar.Selection)}
}

func (s *MemoryStore) LoadSelection(ctx context.Context, key string) (calendar.Selection, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.data[key]
	return sel, ok, nil
}

func (s *MemoryStore) StoreSelection(ctx context.Context, key string, sel calendar.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = sel
	return nil
}

var _ Store = (*MemoryStore)(nil)
