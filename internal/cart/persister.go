package cart

import (
	"context"
	"sync"
)

// Persister stores the full serialized item list under a cart key. Load
// returns (nil, nil) when nothing is stored for the key.
type Persister interface {
	Save(ctx context.Context, key string, items []Item) error
	Load(ctx context.Context, key string) ([]Item, error)
}

// MemoryPersister keeps carts in process memory. Used in tests and local runs.
type MemoryPersister struct {
	mu    sync.Mutex
	carts map[string][]Item
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{carts: map[string][]Item{}}
}

func (m *MemoryPersister) Save(ctx context.Context, key string, items []Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	saved := make([]Item, len(items))
	copy(saved, items)
	m.carts[key] = saved
	return nil
}

func (m *MemoryPersister) Load(ctx context.Context, key string) ([]Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.carts[key]
	if !ok {
		return nil, nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out, nil
}
