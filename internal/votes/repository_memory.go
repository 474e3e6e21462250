package votes

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
	votes map[pairKey]Type
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{votes: make(map[pairKey]Type)}
}

func (r *InMemoryRepository) Upsert(ctx context.Context, userID, dealID string, vote Type) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.votes[pairKey{userID, dealID}] = vote
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, dealID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pairKey{userID, dealID}
	if _, ok := r.votes[key]; !ok {
		return ErrVoteNotFound
	}
	delete(r.votes, key)
	return nil
}

// Get returns the stored vote for a pair, or Neutral when no row exists.
// Test helper.
func (r *InMemoryRepository) Get(userID, dealID string) Type {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.votes[pairKey{userID, dealID}]; ok {
		return v
	}
	return Neutral
}
