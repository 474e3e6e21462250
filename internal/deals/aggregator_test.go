package deals

import "testing"

func row(restaurantID, dealID string) DealRow {
	return DealRow{
		RestaurantID:   restaurantID,
		PlaceID:        "place-" + restaurantID,
		RestaurantName: "name-" + restaurantID,
		DealID:         dealID,
		Item:           "item-" + dealID,
		Type:           TypeDiscount,
		UserID:         "user-1",
		DatePosted:     "2025-03-01T12:00:00.000Z",
		UserVote:       "NEUTRAL",
	}
}

func TestGroupByRestaurantPreservesFirstSeenOrder(t *testing.T) {
	rows := []DealRow{
		row("r2", "d1"),
		row("r1", "d2"),
		row("r2", "d3"),
		row("r3", "d4"),
		row("r1", "d5"),
	}

	groups := GroupByRestaurant(rows)

	if len(groups) != 3 {
		t.Fatalf("expected 3 restaurants, got %d", len(groups))
	}
	for i, want := range []string{"r2", "r1", "r3"} {
		if groups[i].Restaurant.ID != want {
			t.Fatalf("expected restaurant %s at position %d, got %s", want, i, groups[i].Restaurant.ID)
		}
	}
}

func TestGroupByRestaurantAssignsEveryRowToItsBucket(t *testing.T) {
	rows := []DealRow{
		row("r1", "d1"),
		row("r2", "d2"),
		row("r1", "d3"),
	}

	groups := GroupByRestaurant(rows)

	total := 0
	for _, g := range groups {
		for _, r := range g.Rows {
			if r.RestaurantID != g.Restaurant.ID {
				t.Fatalf("deal %s landed in bucket %s", r.DealID, g.Restaurant.ID)
			}
			total++
		}
	}
	if total != len(rows) {
		t.Fatalf("expected %d rows across buckets, got %d", len(rows), total)
	}
}

func TestGroupByRestaurantFirstOccurrenceWins(t *testing.T) {
	first := row("r1", "d1")
	first.RestaurantName = "Original Name"

	second := row("r1", "d2")
	second.RestaurantName = "Conflicting Name"

	groups := GroupByRestaurant([]DealRow{first, second})

	if len(groups) != 1 {
		t.Fatalf("expected 1 restaurant, got %d", len(groups))
	}
	if groups[0].Restaurant.RestaurantName != "Original Name" {
		t.Fatalf("expected first occurrence to win, got %q", groups[0].Restaurant.RestaurantName)
	}
	if len(groups[0].Rows) != 2 {
		t.Fatalf("expected both deals in the bucket, got %d", len(groups[0].Rows))
	}
}

func TestGroupByRestaurantEmptyInput(t *testing.T) {
	if groups := GroupByRestaurant(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}
