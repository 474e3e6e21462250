package places

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
)

type Handler struct {
	client *Client
}

func NewHandler(client *Client) *Handler {
	return &Handler{client: client}
}

type simpleRestaurant struct {
	PlaceID        string    `json:"place_id"`
	RestaurantName string    `json:"restaurant_name"`
	DisplayAddress string    `json:"display_address"`
	Coordinates    geo.Point `json:"coordinates"`
}

//
// --------------------------------------------------
// GET /search_nearby_restaurants
// --------------------------------------------------
//

func (h *Handler) SearchNearbyRestaurants() gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")
		lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
		lng, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
		radius, err3 := strconv.ParseFloat(c.Query("radius"), 64)
		if keyword == "" || err1 != nil || err2 != nil || err3 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid keyword, latitude, longitude or radius"})
			return
		}

		found, err := h.client.SearchNearby(c.Request.Context(), keyword, lat, lng, radius)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "restaurant search failed"})
			return
		}

		restaurants := make([]simpleRestaurant, 0, len(found))
		for _, p := range found {
			restaurants = append(restaurants, simpleRestaurant{
				PlaceID:        p.PlaceID,
				RestaurantName: p.Name,
				DisplayAddress: p.Vicinity,
				Coordinates: geo.Point{
					Latitude:  p.Latitude,
					Longitude: p.Longitude,
				},
			})
		}

		c.JSON(http.StatusOK, restaurants)
	}
}
