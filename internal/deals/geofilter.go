package deals

import "github.com/oliviaz7/Grub-Deal-Finder-App/internal/geo"

// FilterByRadius returns the views whose restaurant coordinates lie within
// radiusMeters of center (boundary inclusive), preserving input order.
func FilterByRadius(views []*RestaurantDeals, center geo.Point, radiusMeters float64) []*RestaurantDeals {
	var inRange []*RestaurantDeals
	for _, v := range views {
		if geo.WithinRadius(center, v.Coordinates, radiusMeters) {
			inRange = append(inRange, v)
		}
	}
	return inRange
}
