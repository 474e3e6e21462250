package votes

import (
	"context"
	"errors"
)

var (
	ErrVoteNotFound = errors.New("no vote to remove")
	ErrInvalidVote  = errors.New("invalid vote value")
)

// Repository defines the data-access contract. At most one row exists per
// (user, deal) pair; the store's primary key is the arbiter.
type Repository interface {
	Upsert(ctx context.Context, userID, dealID string, vote Type) error
	Delete(ctx context.Context, userID, dealID string) error
}
