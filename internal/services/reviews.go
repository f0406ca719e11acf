package services

import "olist-dashboard/internal/models"

// Reviews link to orders, not the reverse, so the delivery-days outlier cut
// applies per review row.
const deliveryOutlierDays = 50

// Reviews computes the score distribution and the delivery-time distribution
// per score. Only reviews whose order survived the date filter count, even
// when the review's own creation date falls inside the range. Undelivered
// orders and deliveries of 50 days or more are excluded from the box
// statistics.
func (a *Analytics) Reviews(v *View) models.ReviewReport {
	a.mu.RLock()
	reviews := a.tables.Reviews
	a.mu.RUnlock()

	orderByID := make(map[string]models.Order, len(v.Orders))
	for _, o := range v.Orders {
		orderByID[o.OrderID] = o
	}

	var scoreCounts [5]int
	var daysByScore [5][]float64
	for _, r := range reviews {
		if r.Score < 1 || r.Score > 5 {
			continue
		}
		o, ok := orderByID[r.OrderID]
		if !ok {
			continue
		}
		scoreCounts[r.Score-1]++

		if days, delivered := o.DeliveryDays(); delivered && days < deliveryOutlierDays {
			daysByScore[r.Score-1] = append(daysByScore[r.Score-1], float64(days))
		}
	}

	report := models.ReviewReport{
		ScoreDistribution: make([]models.ScoreCount, 0, 5),
		DeliveryByScore:   make([]models.ScoreDelivery, 0, 5),
	}
	for score := 1; score <= 5; score++ {
		report.ScoreDistribution = append(report.ScoreDistribution, models.ScoreCount{
			Score: score,
			Count: scoreCounts[score-1],
		})
		report.DeliveryByScore = append(report.DeliveryByScore, models.ScoreDelivery{
			Score: score,
			Days:  boxStats(daysByScore[score-1]),
		})
	}
	return report
}
