package saved

import (
	"context"
	"sync"
)

type pairKey struct {
	userID string
	dealID string
}

// InMemoryRepository backs service tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	pairs map[pairKey]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{pairs: make(map[pairKey]bool)}
}

func (r *InMemoryRepository) Exists(ctx context.Context, userID, dealID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.pairs[pairKey{userID, dealID}], nil
}

func (r *InMemoryRepository) Insert(ctx context.Context, userID, dealID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID, dealID}
	if r.pairs[key] {
		// Mirrors the unique-constraint violation the store would raise.
		return ErrAlreadySaved
	}
	r.pairs[key] = true
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, dealID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID, dealID}
	if !r.pairs[key] {
		return ErrNotSaved
	}
	delete(r.pairs, key)
	return nil
}
