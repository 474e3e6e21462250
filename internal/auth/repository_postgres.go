package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the Postgres error code for a duplicate key.
const uniqueViolation = "23505"

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}

	query := `
		INSERT INTO users (id, username, first_name, last_name, email, password)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(context.Background(), query,
		user.ID, user.Username, user.FirstName, user.LastName, user.Email, user.Password,
	)

	// A concurrent register with the same username slips past the
	// ExistsByUsername pre-check and lands here.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateAccount
	}
	return err
}

func (r *PostgresUserRepository) ExistsByUsername(username string) (bool, error) {
	query := `SELECT 1 FROM users WHERE username=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, username)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresUserRepository) FindByUsername(username string) (*User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password
		FROM users WHERE username=$1
	`
	return r.scanUser(r.db.QueryRow(context.Background(), query, username))
}

func (r *PostgresUserRepository) FindByID(id string) (*User, error) {
	query := `
		SELECT id, username, first_name, last_name, email, password
		FROM users WHERE id=$1
	`
	return r.scanUser(r.db.QueryRow(context.Background(), query, id))
}

func (r *PostgresUserRepository) UpdatePassword(userID, hashedPassword string) error {
	_, err := r.db.Exec(context.Background(), `
		UPDATE users
		SET password = $1
		WHERE id = $2
	`, hashedPassword, userID)
	return err
}

func (r *PostgresUserRepository) scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.Password,
	)
	if err != nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}
