package services

import (
	"sort"

	"olist-dashboard/internal/models"
)

// Overview computes the executive KPIs and the monthly revenue trend.
// Revenue is the sum of item prices; the order count is the distinct order
// count from the raw order table, so the average order value is revenue per
// order, not per item. Undelivered orders are excluded from the delivery-time
// mean instead of counting as zero days.
func (a *Analytics) Overview(v *View) models.OverviewReport {
	report := models.OverviewReport{
		TotalOrders:    len(v.Orders),
		MonthlyRevenue: []models.MonthlyRevenue{},
	}

	monthly := make(map[string]float64)
	for _, f := range v.Facts {
		report.TotalRevenue += f.Price
		if f.MonthYear != "" {
			monthly[f.MonthYear] += f.Price
		}
	}

	if report.TotalOrders > 0 {
		report.AvgOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	var totalDays int
	for _, o := range v.Orders {
		if days, ok := o.DeliveryDays(); ok {
			totalDays += days
			report.DeliveredOrders++
		}
	}
	if report.DeliveredOrders > 0 {
		report.AvgDeliveryDays = float64(totalDays) / float64(report.DeliveredOrders)
	}

	months := make([]string, 0, len(monthly))
	for month := range monthly {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		report.MonthlyRevenue = append(report.MonthlyRevenue, models.MonthlyRevenue{
			Month:   month,
			Revenue: monthly[month],
		})
	}

	return report
}
