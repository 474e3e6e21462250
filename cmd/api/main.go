package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/auth"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/db"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/deals"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/inference"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/places"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/router"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/saved"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/storage"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/votes"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"MAPS_API_KEY",
		"GPU_SERVER_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── EXTERNAL CLIENTS ─────────────────────────
	placesClient := places.NewClient(os.Getenv("MAPS_API_KEY"))
	gpuClient := inference.NewClient(os.Getenv("GPU_SERVER_URL"))

	// ───────────────────────── REPOS ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	dealRepo := deals.NewPostgresRepository(pgDB)
	voteRepo := votes.NewPostgresRepository(pgDB)
	savedRepo := saved.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	dealService := deals.NewService(dealRepo, deals.NewPolicy(dealRepo), placesClient)
	voteService := votes.NewService(voteRepo)
	savedService := saved.NewService(savedRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:      auth.NewHandler(authService),
		Deals:     deals.NewHandler(dealService),
		Votes:     votes.NewHandler(voteService),
		Saved:     saved.NewHandler(savedService),
		Places:    places.NewHandler(placesClient),
		Inference: inference.NewHandler(gpuClient),
		Storage:   storage.NewHandler(r2Client),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Println("🚀 API running at http://localhost:" + port)
	r.Run(":" + port)
}
