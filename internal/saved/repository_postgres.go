package saved

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for a duplicate key.
const uniqueViolation = "23505"

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, dealID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM saved_deals
			WHERE user_id = $1
			  AND deal_id = $2
		)
	`, userID, dealID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) Insert(ctx context.Context, userID, dealID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO saved_deals (user_id, deal_id)
		VALUES ($1, $2)
	`, userID, dealID)

	// A concurrent duplicate save slips past the pre-check and lands here.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrAlreadySaved
	}
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, dealID string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM saved_deals
		WHERE user_id = $1
		  AND deal_id = $2
	`, userID, dealID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotSaved
	}
	return nil
}
