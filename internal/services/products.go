package services

import (
	"sort"

	"olist-dashboard/internal/models"
)

const (
	// Top-N category bounds exposed to the caller.
	MinTopN     = 5
	MaxTopN     = 20
	DefaultTopN = 10

	priceHistogramMax  = 500.0
	priceHistogramBins = 100
)

// ClampTopN normalizes a caller-supplied top-N, defaulting zero to 10 and
// clamping to [5, 20].
func ClampTopN(n int) int {
	switch {
	case n == 0:
		return DefaultTopN
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	}
	return n
}

// Products computes the top-N categories by revenue and the item price
// histogram over [0, 500]. Uncategorized items do not form a category bucket.
// Ties in the ranking keep alphabetical order, making the cut deterministic.
func (a *Analytics) Products(v *View, topN int) models.ProductReport {
	topN = ClampTopN(topN)

	revenue := make(map[string]float64)
	for _, f := range v.Facts {
		if f.Category != "" {
			revenue[f.Category] += f.Price
		}
	}

	categories := make([]string, 0, len(revenue))
	for category := range revenue {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	ranked := make([]models.CategoryRevenue, 0, len(categories))
	for _, category := range categories {
		ranked = append(ranked, models.CategoryRevenue{
			Category: category,
			Revenue:  revenue[category],
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue > ranked[j].Revenue
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return models.ProductReport{
		TopN:           topN,
		TopCategories:  ranked,
		PriceHistogram: priceHistogram(v.Facts),
	}
}

func priceHistogram(facts []models.FactRow) []models.Bin {
	width := priceHistogramMax / priceHistogramBins
	bins := make([]models.Bin, priceHistogramBins)
	for i := range bins {
		bins[i].From = float64(i) * width
		bins[i].To = float64(i+1) * width
	}

	for _, f := range facts {
		if f.Price < 0 || f.Price > priceHistogramMax {
			continue
		}
		idx := int(f.Price / width)
		if idx == priceHistogramBins {
			idx-- // exact upper bound lands in the last bin
		}
		bins[idx].Count++
	}
	return bins
}
