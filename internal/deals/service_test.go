package deals

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"
)

type fakeWebsiteLookup struct {
	url     string
	err     error
	lookups int
}

func (f *fakeWebsiteLookup) LookupWebsite(ctx context.Context, placeID string) (string, error) {
	f.lookups++
	return f.url, f.err
}

func newTestService(now time.Time) (*Service, *InMemoryRepository, *fakeWebsiteLookup) {
	repo := NewInMemoryRepository()
	policy := NewPolicy(repo)
	policy.now = func() time.Time { return now }
	lookup := &fakeWebsiteLookup{url: "https://example.com/logo.png"}
	return NewService(repo, policy, lookup), repo, lookup
}

func postDeal(t *testing.T, s *Service, placeID string, coords geo.Point, expiry *int64, now time.Time) string {
	t.Helper()

	id, err := s.PostDeal(context.Background(), &PostDealRequest{
		PlaceID:        placeID,
		RestaurantName: "Restaurant " + placeID,
		DisplayAddress: "123 Main St",
		Coordinates:    coords,
		Item:           "burger",
		Type:           TypeBOGO,
		UserID:         "user-1",
		ExpiryDate:     expiry,
	}, now.UnixMilli())
	if err != nil {
		t.Fatalf("unexpected error posting deal: %v", err)
	}
	return id
}

func TestListDealsGeofiltersRestaurants(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, _, _ := newTestService(now)

	near := geo.Point{Latitude: 43.4650, Longitude: -80.5210}
	far := geo.Point{Latitude: 43.5000, Longitude: -80.5000}

	postDeal(t, service, "place-near", near, nil, now)
	postDeal(t, service, "place-far", far, nil, now)

	center := geo.Point{Latitude: 43.4643, Longitude: -80.5204}
	views, err := service.ListDeals(context.Background(), center, 500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 || views[0].PlaceID != "place-near" {
		t.Fatalf("expected only the nearby restaurant, got %d views", len(views))
	}
	if len(views[0].Deals) != 1 {
		t.Fatalf("expected one deal, got %d", len(views[0].Deals))
	}
	if views[0].Deals[0].DatePosted == nil {
		t.Fatalf("expected date_posted in epoch millis on the wire")
	}
}

func TestListDealsExcludesExpiredAndMarksRemoved(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, repo, _ := newTestService(now)

	coords := geo.Point{Latitude: 43.4650, Longitude: -80.5210}
	past := now.Add(-24 * time.Hour).UnixMilli()
	future := now.Add(24 * time.Hour).UnixMilli()

	expiredID := postDeal(t, service, "place-1", coords, &past, now.Add(-48*time.Hour))
	liveID := postDeal(t, service, "place-1", coords, &future, now)

	center := geo.Point{Latitude: 43.4643, Longitude: -80.5204}
	views, err := service.ListDeals(context.Background(), center, 500, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 1 {
		t.Fatalf("expected one restaurant, got %d", len(views))
	}
	if len(views[0].Deals) != 1 || views[0].Deals[0].ID != liveID {
		t.Fatalf("expected only the live deal, got %+v", views[0].Deals)
	}

	// The expired deal must now be soft-removed in the store: a second fetch
	// must not see it at all.
	rows, _ := repo.ListDealRows(context.Background(), nil)
	for _, r := range rows {
		if r.DealID == expiredID {
			t.Fatalf("expected expired deal to be soft-removed from listings")
		}
	}
}

func TestPostDealLooksUpWebsiteOncePerRestaurant(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, repo, lookup := newTestService(now)

	coords := geo.Point{Latitude: 43.4650, Longitude: -80.5210}
	postDeal(t, service, "place-1", coords, nil, now)
	postDeal(t, service, "place-1", coords, nil, now)

	if lookup.lookups != 1 {
		t.Fatalf("expected one website lookup, got %d", lookup.lookups)
	}

	restaurant, err := repo.GetRestaurantByPlaceID(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if restaurant.ImageURL == nil || *restaurant.ImageURL != "https://example.com/logo.png" {
		t.Fatalf("expected image url from website lookup, got %v", restaurant.ImageURL)
	}
}

func TestPostDealWebsiteLookupFailureIsNonFatal(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, repo, lookup := newTestService(now)
	lookup.url = ""
	lookup.err = errors.New("places unavailable")

	coords := geo.Point{Latitude: 43.4650, Longitude: -80.5210}
	postDeal(t, service, "place-1", coords, nil, now)

	restaurant, err := repo.GetRestaurantByPlaceID(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("expected restaurant to be created anyway: %v", err)
	}
	if restaurant.ImageURL != nil {
		t.Fatalf("expected absent image url, got %v", *restaurant.ImageURL)
	}
}

func TestDeleteDealOwnership(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, _, _ := newTestService(now)

	coords := geo.Point{Latitude: 43.4650, Longitude: -80.5210}
	dealID := postDeal(t, service, "place-1", coords, nil, now)

	if err := service.DeleteDeal(context.Background(), dealID, "someone-else"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := service.DeleteDeal(context.Background(), "missing-deal", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := service.DeleteDeal(context.Background(), dealID, "user-1"); err != nil {
		t.Fatalf("expected owner delete to succeed, got %v", err)
	}

	// Deleted means gone from listings but the requester can't delete twice.
	if err := service.DeleteDeal(context.Background(), dealID, "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after removal, got %v", err)
	}
}

func TestListSavedDealsSkipsGeofilter(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	service, repo, _ := newTestService(now)

	far := geo.Point{Latitude: 43.5000, Longitude: -80.5000}
	dealID := postDeal(t, service, "place-far", far, nil, now)
	repo.SaveForUser(dealID, "user-1")

	views, err := service.ListSavedDeals(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 1 || len(views[0].Deals) != 1 {
		t.Fatalf("expected the saved deal regardless of distance, got %+v", views)
	}
	if !views[0].Deals[0].UserSaved {
		t.Fatalf("expected user_saved annotation to be true")
	}
}
