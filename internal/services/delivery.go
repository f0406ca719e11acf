package services

import (
	"math"
	"sort"

	"olist-dashboard/internal/models"
)

const deliveryHistogramMaxDays = 50

// MaxScatterPoints is the rendering down-sample limit for the freight
// scatter. The query returns the full set; SampleFreight applies the limit.
const MaxScatterPoints = 5000

// Delivery computes the delivery-time histogram, the freight-vs-weight
// scatter and the mean freight per customer state. Orders never delivered
// carry no delivery time and are dropped from the histogram; items without a
// known product weight are dropped from the scatter.
func (a *Analytics) Delivery(v *View) models.DeliveryReport {
	a.mu.RLock()
	items := a.tables.Items
	productByID := a.productByID
	a.mu.RUnlock()

	histogram := make([]models.DayCount, deliveryHistogramMaxDays+1)
	for i := range histogram {
		histogram[i].Days = i
	}
	for _, o := range v.Orders {
		if days, ok := o.DeliveryDays(); ok && days >= 0 && days <= deliveryHistogramMaxDays {
			histogram[days].Count++
		}
	}

	points := make([]models.FreightPoint, 0, len(v.Facts))
	for _, item := range items {
		if !v.HasOrder(item.OrderID) {
			continue
		}
		p, ok := productByID[item.ProductID]
		if !ok || math.IsNaN(p.WeightG) {
			continue
		}
		points = append(points, models.FreightPoint{
			WeightG:      p.WeightG,
			FreightValue: item.FreightValue,
		})
	}

	freightSums := make(map[string]float64)
	freightCounts := make(map[string]int)
	for _, f := range v.Facts {
		if f.CustomerState == "" {
			continue
		}
		freightSums[f.CustomerState] += f.FreightValue
		freightCounts[f.CustomerState]++
	}

	byState := make([]models.StateFreight, 0, len(freightSums))
	for _, state := range sortedKeys(freightSums) {
		byState = append(byState, models.StateFreight{
			State:       state,
			MeanFreight: freightSums[state] / float64(freightCounts[state]),
		})
	}
	sort.SliceStable(byState, func(i, j int) bool {
		return byState[i].MeanFreight > byState[j].MeanFreight
	})

	return models.DeliveryReport{
		DaysHistogram:   histogram,
		FreightVsWeight: points,
		FreightByState:  byState,
	}
}

// SampleFreight down-samples scatter points to at most limit, keeping every
// k-th point so the shape of the distribution survives.
func SampleFreight(points []models.FreightPoint, limit int) []models.FreightPoint {
	if limit <= 0 || len(points) <= limit {
		return points
	}
	step := float64(len(points)) / float64(limit)
	sampled := make([]models.FreightPoint, 0, limit)
	for i := 0; i < limit; i++ {
		sampled = append(sampled, points[int(float64(i)*step)])
	}
	return sampled
}
