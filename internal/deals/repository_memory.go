package deals

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryRepository backs service and handler tests.
type InMemoryRepository struct {
	mu sync.Mutex

	restaurants []*Restaurant
	records     []*dealRecord

	nextID int
}

type dealRecord struct {
	id           string
	restaurantID string
	deal         NewDeal
	removed      bool
	savedBy      map[string]bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) ListDealRows(ctx context.Context, userID *string) ([]DealRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []DealRow
	for _, rec := range r.records {
		if rec.removed {
			continue
		}
		rows = append(rows, r.rowFor(rec, userID))
	}
	return rows, nil
}

func (r *InMemoryRepository) ListSavedDealRows(ctx context.Context, userID string) ([]DealRow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []DealRow
	for _, rec := range r.records {
		if rec.removed || !rec.savedBy[userID] {
			continue
		}
		rows = append(rows, r.rowFor(rec, &userID))
	}
	return rows, nil
}

func (r *InMemoryRepository) rowFor(rec *dealRecord, userID *string) DealRow {
	var restaurant *Restaurant
	for _, res := range r.restaurants {
		if res.ID == rec.restaurantID {
			restaurant = res
			break
		}
	}

	row := DealRow{
		RestaurantID:    rec.restaurantID,
		DealID:          rec.id,
		Item:            rec.deal.Item,
		Description:     rec.deal.Description,
		Type:            rec.deal.Type,
		Price:           rec.deal.Price,
		UserID:          rec.deal.UserID,
		DatePosted:      rec.deal.DatePosted,
		ExpiryDate:      rec.deal.ExpiryDate,
		ImageID:         rec.deal.ImageID,
		ApplicableGroup: rec.deal.ApplicableGroup,
		DailyStartTimes: rec.deal.DailyStartTimes,
		DailyEndTimes:   rec.deal.DailyEndTimes,
		UserVote:        "NEUTRAL",
	}
	if restaurant != nil {
		row.PlaceID = restaurant.PlaceID
		row.RestaurantName = restaurant.Name
		row.DisplayAddress = restaurant.DisplayAddress
		row.Latitude = restaurant.Coordinates.Latitude
		row.Longitude = restaurant.Coordinates.Longitude
		row.RestaurantImageURL = restaurant.ImageURL
	}
	if userID != nil {
		row.UserSaved = rec.savedBy[*userID]
	}
	return row
}

func (r *InMemoryRepository) MarkRemoved(ctx context.Context, dealID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.id == dealID {
			rec.removed = true
			return nil
		}
	}
	return nil
}

func (r *InMemoryRepository) GetRestaurantByPlaceID(ctx context.Context, placeID string) (*Restaurant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, res := range r.restaurants {
		if res.PlaceID == placeID {
			copied := *res
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) CreateRestaurant(ctx context.Context, restaurant *Restaurant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if restaurant.ID == "" {
		r.nextID++
		restaurant.ID = fmt.Sprintf("restaurant-%d", r.nextID)
	}
	copied := *restaurant
	r.restaurants = append(r.restaurants, &copied)
	return nil
}

func (r *InMemoryRepository) CreateDeal(ctx context.Context, restaurantID string, deal *NewDeal) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := fmt.Sprintf("deal-%d", r.nextID)
	r.records = append(r.records, &dealRecord{
		id:           id,
		restaurantID: restaurantID,
		deal:         *deal,
		savedBy:      make(map[string]bool),
	})
	return id, nil
}

func (r *InMemoryRepository) GetDealOwner(ctx context.Context, dealID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.id == dealID && !rec.removed {
			return rec.deal.UserID, nil
		}
	}
	return "", ErrNotFound
}

// SaveForUser marks a deal as saved for a user. Test helper.
func (r *InMemoryRepository) SaveForUser(dealID, userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.id == dealID {
			rec.savedBy[userID] = true
		}
	}
}
