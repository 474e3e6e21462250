package saved

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save marks a deal as saved for a user. Saving an already-saved deal is an
// error, not a no-op.
func (s *Service) Save(ctx context.Context, userID, dealID string) error {
	exists, err := s.repo.Exists(ctx, userID, dealID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadySaved
	}
	return s.repo.Insert(ctx, userID, dealID)
}

func (s *Service) Unsave(ctx context.Context, userID, dealID string) error {
	return s.repo.Delete(ctx, userID, dealID)
}
