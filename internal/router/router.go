package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/auth"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/deals"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/inference"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/middleware"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/places"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/saved"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/storage"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/votes"
)

// Handlers bundles every feature handler the API exposes. Optional fields
// (Places, Inference, Storage) may be nil; their routes are skipped.
type Handlers struct {
	Auth      *auth.Handler
	Deals     *deals.Handler
	Votes     *votes.Handler
	Saved     *saved.Handler
	Places    *places.Handler
	Inference *inference.Handler
	Storage   *storage.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── DEALS ─────────────────────────
	r.GET("/restaurant_deals", h.Deals.GetRestaurantDeals())
	r.POST("/add_restaurant_deal", h.Deals.AddRestaurantDeal())
	r.GET("/delete_deal", h.Deals.DeleteDeal())
	r.GET("/get_restaurant", h.Deals.GetRestaurant())

	// ───────────────────────── VOTES + SAVED ─────────────────────────
	r.GET("/update_vote", h.Votes.UpdateVote())
	r.GET("/save_deal", h.Saved.SaveDeal())
	r.GET("/unsave_deal", h.Saved.UnsaveDeal())
	r.GET("/get_saved_deals", h.Deals.GetSavedDeals())

	// ───────────────────────── AUTH ─────────────────────────
	r.POST("/create_new_user_account", h.Auth.CreateAccount())
	r.POST("/login", h.Auth.Login())
	r.POST("/change_password", h.Auth.ChangePassword())
	r.GET("/get_user_by_id", h.Auth.GetUserByID())

	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", h.Auth.Me())
	}

	// ───────────────────────── PLACES ─────────────────────────
	if h.Places != nil {
		r.GET("/search_nearby_restaurants", h.Places.SearchNearbyRestaurants())
	}

	// ───────────────────────── GPU PROXY ─────────────────────────
	if h.Inference != nil {
		r.POST("/proxy/generate", h.Inference.Generate())
		r.GET("/proxy/handshake", h.Inference.Handshake())
	}

	// ───────────────────────── STORAGE ─────────────────────────
	if h.Storage != nil {
		r.POST("/upload_deal_image", h.Storage.UploadDealImage())
	}

	return r
}
