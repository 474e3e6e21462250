package deals

import (
	"context"
	"errors"
	"log"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/timeutil"
)

var (
	ErrNotFound     = errors.New("deal not found")
	ErrUnauthorized = errors.New("not the owner of this deal")
)

// WebsiteLookup resolves a place's website once, when its restaurant row is
// first created. Failures are non-fatal; the image reference stays absent.
type WebsiteLookup interface {
	LookupWebsite(ctx context.Context, placeID string) (string, error)
}

type Service struct {
	repo    Repository
	policy  *Policy
	website WebsiteLookup
}

func NewService(repo Repository, policy *Policy, website WebsiteLookup) *Service {
	return &Service{
		repo:    repo,
		policy:  policy,
		website: website,
	}
}

// --------------------------------------------------
// List deals near a location
// --------------------------------------------------
func (s *Service) ListDeals(
	ctx context.Context,
	center geo.Point,
	radiusMeters float64,
	userID *string,
) ([]*RestaurantDeals, error) {

	rows, err := s.repo.ListDealRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := s.assemble(ctx, rows)
	return FilterByRadius(views, center, radiusMeters), nil
}

// --------------------------------------------------
// List a user's saved deals (no geofilter)
// --------------------------------------------------
func (s *Service) ListSavedDeals(
	ctx context.Context,
	userID string,
) ([]*RestaurantDeals, error) {

	rows, err := s.repo.ListSavedDealRows(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, rows), nil
}

// assemble runs the shared read pipeline: group flat rows by restaurant,
// then apply the lifecycle policy to each deal.
func (s *Service) assemble(ctx context.Context, rows []DealRow) []*RestaurantDeals {
	groups := GroupByRestaurant(rows)

	views := make([]*RestaurantDeals, 0, len(groups))
	for _, g := range groups {
		view := g.Restaurant
		for _, row := range g.Rows {
			if deal, ok := s.policy.Evaluate(ctx, row); ok {
				view.Deals = append(view.Deals, deal)
			}
		}
		views = append(views, &view)
	}
	return views
}

// --------------------------------------------------
// Post a new deal
// --------------------------------------------------

type PostDealRequest struct {
	PlaceID        string
	RestaurantName string
	DisplayAddress string
	Coordinates    geo.Point

	Item            string
	Description     *string
	Type            DealType
	Price           *float64
	UserID          string
	ExpiryDate      *int64
	ImageID         *string
	ApplicableGroup ApplicableGroup
	DailyStartTimes []int32
	DailyEndTimes   []int32
}

func (s *Service) PostDeal(
	ctx context.Context,
	req *PostDealRequest,
	nowMillis int64,
) (string, error) {

	restaurant, err := s.repo.GetRestaurantByPlaceID(ctx, req.PlaceID)
	if errors.Is(err, ErrNotFound) {
		restaurant = &Restaurant{
			PlaceID:        req.PlaceID,
			Name:           req.RestaurantName,
			DisplayAddress: req.DisplayAddress,
			Coordinates:    req.Coordinates,
		}
		if url, lookupErr := s.website.LookupWebsite(ctx, req.PlaceID); lookupErr != nil {
			log.Printf("place %s: website lookup failed: %v", req.PlaceID, lookupErr)
		} else if url != "" {
			restaurant.ImageURL = &url
		}
		if err := s.repo.CreateRestaurant(ctx, restaurant); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", err
	}

	deal := &NewDeal{
		Item:            req.Item,
		Description:     req.Description,
		Type:            req.Type,
		Price:           req.Price,
		UserID:          req.UserID,
		DatePosted:      timeutil.ToStorageString(nowMillis),
		ImageID:         req.ImageID,
		ApplicableGroup: req.ApplicableGroup,
		DailyStartTimes: req.DailyStartTimes,
		DailyEndTimes:   req.DailyEndTimes,
	}
	if req.ExpiryDate != nil {
		expiry := timeutil.ToStorageString(*req.ExpiryDate)
		deal.ExpiryDate = &expiry
	}

	return s.repo.CreateDeal(ctx, restaurant.ID, deal)
}

// --------------------------------------------------
// Delete (soft-remove) a deal
// --------------------------------------------------
func (s *Service) DeleteDeal(ctx context.Context, dealID, requesterID string) error {
	owner, err := s.repo.GetDealOwner(ctx, dealID)
	if err != nil {
		return err
	}
	if owner != requesterID {
		return ErrUnauthorized
	}
	return s.repo.MarkRemoved(ctx, dealID)
}

// --------------------------------------------------
// Restaurant lookup
// --------------------------------------------------
func (s *Service) GetRestaurant(ctx context.Context, placeID string) (*Restaurant, error) {
	return s.repo.GetRestaurantByPlaceID(ctx, placeID)
}
