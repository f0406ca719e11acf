package services

import (
	"sort"

	"olist-dashboard/internal/models"
)

const topLocations = 10

// Customers counts fact rows per customer state and city and keeps the top
// ten of each. The counts are item-level, not distinct-order — an order with
// three items counts three times, matching the source dashboard's documented
// behavior.
func (a *Analytics) Customers(v *View) models.CustomerReport {
	states := make(map[string]int)
	cities := make(map[string]int)
	for _, f := range v.Facts {
		if f.CustomerState != "" {
			states[f.CustomerState]++
		}
		if f.CustomerCity != "" {
			cities[f.CustomerCity]++
		}
	}

	return models.CustomerReport{
		TopStates: topCounts(states, topLocations),
		TopCities: topCounts(cities, topLocations),
	}
}

// topCounts ranks counts descending, ties broken alphabetically.
func topCounts(counts map[string]int, limit int) []models.LocationCount {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	ranked := make([]models.LocationCount, 0, len(names))
	for _, name := range names {
		ranked = append(ranked, models.LocationCount{Location: name, Count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
