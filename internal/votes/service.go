package votes

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetVote applies a user's vote on a deal. UPVOTE and DOWNVOTE upsert the
// (user, deal) row, replacing any prior value; NEUTRAL deletes the row and
// fails with ErrVoteNotFound if none existed. The applied state is returned.
func (s *Service) SetVote(ctx context.Context, userID, dealID string, vote Type) (Type, error) {
	if !vote.Valid() {
		return "", ErrInvalidVote
	}

	if vote == Neutral {
		if err := s.repo.Delete(ctx, userID, dealID); err != nil {
			return "", err
		}
		return Neutral, nil
	}

	if err := s.repo.Upsert(ctx, userID, dealID, vote); err != nil {
		return "", err
	}
	return vote, nil
}
