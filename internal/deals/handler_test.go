package deals

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
)

func TestAddRestaurantDealCreatesEveryDealInPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, _, _ := newTestService(time.Now())

	r := gin.New()
	r.POST("/add_restaurant_deal", NewHandler(service).AddRestaurantDeal())

	body := `{
		"place_id": "place-1",
		"restaurant_name": "Testaurant",
		"display_address": "123 Main St",
		"coordinates": {"latitude": 43.4643, "longitude": -80.5204},
		"Deal": [
			{"item": "burger", "type": "DISCOUNT", "user_id": "user-1", "price": 4.99},
			{"item": "fries", "type": "BOGO", "user_id": "user-1"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/add_restaurant_deal", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		DealIDs []string `json:"dealIds"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected response body: %v", err)
	}
	if len(resp.DealIDs) != 2 {
		t.Fatalf("expected 2 deal ids, got %d", len(resp.DealIDs))
	}

	center := geo.Point{Latitude: 43.4643, Longitude: -80.5204}
	views, err := service.ListDeals(context.Background(), center, 500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected 1 restaurant, got %d", len(views))
	}
	if len(views[0].Deals) != 2 {
		t.Fatalf("expected both deals stored, got %d", len(views[0].Deals))
	}
}
