package deals

import "github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"

// RestaurantGroup is the intermediate form between the flat join and the
// nested response: the restaurant-level fields from the first row seen for
// that restaurant id, plus every deal row belonging to it.
type RestaurantGroup struct {
	Restaurant RestaurantDeals
	Rows       []DealRow
}

// GroupByRestaurant re-aggregates flat deal rows into restaurant buckets.
// Output order is the order of first appearance of each restaurant id.
// If two rows disagree on restaurant-level fields for the same id, the
// first occurrence wins.
func GroupByRestaurant(rows []DealRow) []*RestaurantGroup {
	byID := make(map[string]*RestaurantGroup)
	var ordered []*RestaurantGroup

	for _, row := range rows {
		group, ok := byID[row.RestaurantID]
		if !ok {
			group = &RestaurantGroup{
				Restaurant: RestaurantDeals{
					ID:             row.RestaurantID,
					PlaceID:        row.PlaceID,
					RestaurantName: row.RestaurantName,
					DisplayAddress: row.DisplayAddress,
					Coordinates: geo.Point{
						Latitude:  row.Latitude,
						Longitude: row.Longitude,
					},
					ImageURL: row.RestaurantImageURL,
					Deals:    []Deal{},
				},
			}
			byID[row.RestaurantID] = group
			ordered = append(ordered, group)
		}
		group.Rows = append(group.Rows, row)
	}

	return ordered
}
