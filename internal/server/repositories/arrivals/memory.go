package arrivals

import (
	"context"
	"sync"
)

// MemoryRepository keeps arrivals in process memory. It is used when the
// server runs without a database; data is lost on restart.
type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]bool
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]bool)}
}

func (r *MemoryRepository) All(ctx context.Context) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]bool, len(r.data))
	for id, arrived := range r.data {
		out[id] = arrived
	}
	return out, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, id string, arrived bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[id] = arrived
	return nil
}
