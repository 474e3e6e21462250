package saved

import (
	"context"
	"errors"
)

var (
	ErrAlreadySaved = errors.New("deal already saved")
	ErrNotSaved     = errors.New("deal not saved")
)

// Repository defines the data-access contract. The store's uniqueness
// constraint on (user, deal) is the actual race arbiter for duplicate saves;
// the service's existence check is only a best-effort pre-check.
type Repository interface {
	Exists(ctx context.Context, userID, dealID string) (bool, error)
	Insert(ctx context.Context, userID, dealID string) error
	Delete(ctx context.Context, userID, dealID string) error
}
