package deals

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// dealRowColumns is shared by the two listing queries. Vote counts come from
// the votes table; user_vote / user_saved from the per-user LEFT JOINs.
const dealRowColumns = `
	r.id,
	r.place_id,
	r.name,
	r.display_address,
	r.latitude,
	r.longitude,
	r.image_url,
	d.id,
	d.item,
	d.description,
	d.type,
	d.price,
	d.user_id,
	d.date_posted,
	d.expiry_date,
	d.image_id,
	d.applicable_group,
	d.daily_start_times,
	d.daily_end_times,
	(SELECT COUNT(*) FROM votes v WHERE v.deal_id = d.id AND v.vote = 'UPVOTE'),
	(SELECT COUNT(*) FROM votes v WHERE v.deal_id = d.id AND v.vote = 'DOWNVOTE'),
	COALESCE(uv.vote, 'NEUTRAL'),
	us.deal_id IS NOT NULL
`

// --------------------------------------------------
// List Deal Rows (primary listing path)
// --------------------------------------------------
func (r *PostgresRepository) ListDealRows(
	ctx context.Context,
	userID *string,
) ([]DealRow, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+dealRowColumns+`
		FROM deals d
		JOIN restaurants r ON r.id = d.restaurant_id
		LEFT JOIN votes uv ON uv.deal_id = d.id AND uv.user_id = $1
		LEFT JOIN saved_deals us ON us.deal_id = d.id AND us.user_id = $1
		WHERE d.is_removed = FALSE
		ORDER BY d.date_posted DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDealRows(rows)
}

// --------------------------------------------------
// List Saved Deal Rows
// --------------------------------------------------
func (r *PostgresRepository) ListSavedDealRows(
	ctx context.Context,
	userID string,
) ([]DealRow, error) {

	rows, err := r.db.Query(ctx, `
		SELECT `+dealRowColumns+`
		FROM saved_deals s
		JOIN deals d ON d.id = s.deal_id
		JOIN restaurants r ON r.id = d.restaurant_id
		LEFT JOIN votes uv ON uv.deal_id = d.id AND uv.user_id = $1
		LEFT JOIN saved_deals us ON us.deal_id = d.id AND us.user_id = $1
		WHERE s.user_id = $1
		  AND d.is_removed = FALSE
		ORDER BY d.date_posted DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDealRows(rows)
}

func scanDealRows(rows pgx.Rows) ([]DealRow, error) {
	var result []DealRow

	for rows.Next() {
		var row DealRow
		var group *string

		if err := rows.Scan(
			&row.RestaurantID,
			&row.PlaceID,
			&row.RestaurantName,
			&row.DisplayAddress,
			&row.Latitude,
			&row.Longitude,
			&row.RestaurantImageURL,
			&row.DealID,
			&row.Item,
			&row.Description,
			&row.Type,
			&row.Price,
			&row.UserID,
			&row.DatePosted,
			&row.ExpiryDate,
			&row.ImageID,
			&group,
			&row.DailyStartTimes,
			&row.DailyEndTimes,
			&row.NumUpvote,
			&row.NumDownvote,
			&row.UserVote,
			&row.UserSaved,
		); err != nil {
			return nil, err
		}

		if group != nil {
			row.ApplicableGroup = ApplicableGroup(*group)
		}
		result = append(result, row)
	}

	return result, rows.Err()
}

// --------------------------------------------------
// Soft Removal
// --------------------------------------------------
func (r *PostgresRepository) MarkRemoved(ctx context.Context, dealID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE deals
		SET is_removed = TRUE
		WHERE id = $1
	`, dealID)
	return err
}

// --------------------------------------------------
// Restaurants
// --------------------------------------------------
func (r *PostgresRepository) GetRestaurantByPlaceID(
	ctx context.Context,
	placeID string,
) (*Restaurant, error) {

	restaurant := &Restaurant{}
	err := r.db.QueryRow(ctx, `
		SELECT id, place_id, name, display_address, latitude, longitude, image_url
		FROM restaurants
		WHERE place_id = $1
	`, placeID).Scan(
		&restaurant.ID,
		&restaurant.PlaceID,
		&restaurant.Name,
		&restaurant.DisplayAddress,
		&restaurant.Coordinates.Latitude,
		&restaurant.Coordinates.Longitude,
		&restaurant.ImageURL,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *PostgresRepository) CreateRestaurant(
	ctx context.Context,
	restaurant *Restaurant,
) error {

	if restaurant.ID == "" {
		restaurant.ID = uuid.New().String()
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurants (id, place_id, name, display_address, latitude, longitude, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		restaurant.ID,
		restaurant.PlaceID,
		restaurant.Name,
		restaurant.DisplayAddress,
		restaurant.Coordinates.Latitude,
		restaurant.Coordinates.Longitude,
		restaurant.ImageURL,
	)
	return err
}

// --------------------------------------------------
// Deals
// --------------------------------------------------
func (r *PostgresRepository) CreateDeal(
	ctx context.Context,
	restaurantID string,
	deal *NewDeal,
) (string, error) {

	id := uuid.New().String()

	var group *string
	if deal.ApplicableGroup != "" {
		g := string(deal.ApplicableGroup)
		group = &g
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO deals (
			id,
			restaurant_id,
			item,
			description,
			type,
			price,
			user_id,
			date_posted,
			expiry_date,
			image_id,
			applicable_group,
			daily_start_times,
			daily_end_times
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		id,
		restaurantID,
		deal.Item,
		deal.Description,
		deal.Type,
		deal.Price,
		deal.UserID,
		deal.DatePosted,
		deal.ExpiryDate,
		deal.ImageID,
		group,
		deal.DailyStartTimes,
		deal.DailyEndTimes,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *PostgresRepository) GetDealOwner(ctx context.Context, dealID string) (string, error) {
	var owner string
	err := r.db.QueryRow(ctx, `
		SELECT user_id
		FROM deals
		WHERE id = $1
		  AND is_removed = FALSE
	`, dealID).Scan(&owner)

	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	return owner, err
}
