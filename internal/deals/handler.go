package deals

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

//
// --------------------------------------------------
// GET /restaurant_deals
// --------------------------------------------------
//

func (h *Handler) GetRestaurantDeals() gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
		lng, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
		radius, err3 := strconv.ParseFloat(c.Query("radius"), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude, longitude or radius"})
			return
		}

		var userID *string
		if id := c.Query("user_id"); id != "" {
			userID = &id
		}

		views, err := h.service.ListDeals(
			c.Request.Context(),
			geo.Point{Latitude: lat, Longitude: lng},
			radius,
			userID,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch deals"})
			return
		}

		c.JSON(http.StatusOK, views)
	}
}

//
// --------------------------------------------------
// POST /add_restaurant_deal
// --------------------------------------------------
//

type addDealBody struct {
	PlaceID        string    `json:"place_id" binding:"required"`
	RestaurantName string    `json:"restaurant_name" binding:"required"`
	DisplayAddress string    `json:"display_address"`
	Coordinates    geo.Point `json:"coordinates"`

	Deals []addDealDeal `json:"Deal" binding:"required,min=1"`
}

type addDealDeal struct {
	Item            string   `json:"item" binding:"required"`
	Description     *string  `json:"description"`
	Type            DealType `json:"type" binding:"required"`
	Price           *float64 `json:"price"`
	UserID          string   `json:"user_id" binding:"required"`
	ExpiryDate      *int64   `json:"expiry_date"`
	ImageID         *string  `json:"image_id"`
	ApplicableGroup string   `json:"applicable_group"`
	DailyStartTimes []int32  `json:"daily_start_times"`
	DailyEndTimes   []int32  `json:"daily_end_times"`
}

func (h *Handler) AddRestaurantDeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body addDealBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		dealIDs := make([]string, 0, len(body.Deals))
		for _, deal := range body.Deals {
			dealID, err := h.service.PostDeal(
				c.Request.Context(),
				&PostDealRequest{
					PlaceID:         body.PlaceID,
					RestaurantName:  body.RestaurantName,
					DisplayAddress:  body.DisplayAddress,
					Coordinates:     body.Coordinates,
					Item:            deal.Item,
					Description:     deal.Description,
					Type:            deal.Type,
					Price:           deal.Price,
					UserID:          deal.UserID,
					ExpiryDate:      deal.ExpiryDate,
					ImageID:         deal.ImageID,
					ApplicableGroup: ApplicableGroup(deal.ApplicableGroup),
					DailyStartTimes: deal.DailyStartTimes,
					DailyEndTimes:   deal.DailyEndTimes,
				},
				time.Now().UnixMilli(),
			)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add deal"})
				return
			}
			dealIDs = append(dealIDs, dealID)
		}

		c.JSON(http.StatusCreated, gin.H{"dealIds": dealIDs})
	}
}

//
// --------------------------------------------------
// GET /get_saved_deals
// --------------------------------------------------
//

func (h *Handler) GetSavedDeals() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
			return
		}

		views, err := h.service.ListSavedDeals(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch saved deals"})
			return
		}

		c.JSON(http.StatusOK, views)
	}
}

//
// --------------------------------------------------
// GET /delete_deal
// --------------------------------------------------
//

func (h *Handler) DeleteDeal() gin.HandlerFunc {
	return func(c *gin.Context) {
		dealID := c.Query("deal_id")
		userID := c.Query("user_id")
		if dealID == "" || userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing deal_id or user_id"})
			return
		}

		err := h.service.DeleteDeal(c.Request.Context(), dealID, userID)
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "deal not found"})
		case errors.Is(err, ErrUnauthorized):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "not the owner of this deal"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "failed to delete deal"})
		default:
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "deal deleted"})
		}
	}
}

//
// --------------------------------------------------
// GET /get_restaurant
// --------------------------------------------------
//

func (h *Handler) GetRestaurant() gin.HandlerFunc {
	return func(c *gin.Context) {
		placeID := c.Query("place_id")
		if placeID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing place_id"})
			return
		}

		restaurant, err := h.service.GetRestaurant(c.Request.Context(), placeID)
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "restaurant not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch restaurant"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
	}
}
