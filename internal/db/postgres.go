package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("✅ Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

const userTableSQL = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username VARCHAR(255) UNIQUE NOT NULL,
		first_name VARCHAR(255) NOT NULL,
		last_name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password VARCHAR(255) NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

const restaurantTableSQL = `
	CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY,
		place_id VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		display_address VARCHAR(500) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		image_url VARCHAR(500),
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
`

// date_posted and expiry_date are ISO-8601 strings, the canonical storage
// form. Conversion to epoch millis happens at the API boundary.
const dealTableSQL = `
	CREATE TABLE IF NOT EXISTS deals (
		id UUID PRIMARY KEY,
		restaurant_id UUID NOT NULL,
		item VARCHAR(255) NOT NULL,
		description TEXT,
		type VARCHAR(50) NOT NULL,
		price DOUBLE PRECISION,
		user_id UUID NOT NULL,
		date_posted TEXT NOT NULL,
		expiry_date TEXT,
		image_id VARCHAR(255),
		applicable_group VARCHAR(50),
		daily_start_times INT[],
		daily_end_times INT[],
		is_removed BOOLEAN NOT NULL DEFAULT FALSE,
		FOREIGN KEY (restaurant_id) REFERENCES restaurants(id)
	)
`

const voteTableSQL = `
	CREATE TABLE IF NOT EXISTS votes (
		user_id UUID NOT NULL,
		deal_id UUID NOT NULL,
		vote VARCHAR(20) NOT NULL,
		PRIMARY KEY (user_id, deal_id),
		FOREIGN KEY (deal_id) REFERENCES deals(id)
	)
`

const savedDealTableSQL = `
	CREATE TABLE IF NOT EXISTS saved_deals (
		user_id UUID NOT NULL,
		deal_id UUID NOT NULL,
		PRIMARY KEY (user_id, deal_id),
		FOREIGN KEY (deal_id) REFERENCES deals(id)
	)
`

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	tables := []string{
		userTableSQL,
		restaurantTableSQL,
		dealTableSQL,
		voteTableSQL,
		savedDealTableSQL,
	}
	for _, ddl := range tables {
		if _, err := db.Exec(ctx, ddl); err != nil {
			return err
		}
	}

	log.Println("✅ Schema initialized successfully")
	return nil
}
