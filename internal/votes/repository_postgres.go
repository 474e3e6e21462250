package votes

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, userID, dealID string, vote Type) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO votes (user_id, deal_id, vote)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, deal_id)
		DO UPDATE SET vote = EXCLUDED.vote
	`, userID, dealID, string(vote))
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, dealID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM votes
		WHERE user_id = $1
		  AND deal_id = $2
	`, userID, dealID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVoteNotFound
	}
	return nil
}
