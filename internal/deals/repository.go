package deals

import "context"

// NewDeal is the insert shape for a posted deal, timestamps already in their
// storage form.
type NewDeal struct {
	Item            string
	Description     *string
	Type            DealType
	Price           *float64
	UserID          string
	DatePosted      string
	ExpiryDate      *string
	ImageID         *string
	ApplicableGroup ApplicableGroup
	DailyStartTimes []int32
	DailyEndTimes   []int32
}

// Repository defines the data-access contract. Service depends ONLY on this
// interface. Listing queries exclude soft-removed deals at the store; the
// lifecycle policy only triggers new removals.
type Repository interface {
	ListDealRows(ctx context.Context, userID *string) ([]DealRow, error)
	ListSavedDealRows(ctx context.Context, userID string) ([]DealRow, error)
	MarkRemoved(ctx context.Context, dealID string) error

	GetRestaurantByPlaceID(ctx context.Context, placeID string) (*Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant *Restaurant) error

	CreateDeal(ctx context.Context, restaurantID string, deal *NewDeal) (string, error)
	GetDealOwner(ctx context.Context, dealID string) (string, error)
}
