package services

import "olist-dashboard/internal/models"

// weekdayOrder is the canonical chart ordering, not alphabetic.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Sales computes revenue by weekday and by hour of day. Both series always
// contain every slot, so a range covering only Tuesdays still emits seven
// weekday entries, six of them zero.
func (a *Analytics) Sales(v *View) models.SalesReport {
	byDay := make(map[string]float64, 7)
	var byHour [24]float64

	for _, f := range v.Facts {
		if f.DayOfWeek != "" {
			byDay[f.DayOfWeek] += f.Price
		}
		if f.Hour >= 0 && f.Hour < 24 {
			byHour[f.Hour] += f.Price
		}
	}

	report := models.SalesReport{
		ByWeekday: make([]models.WeekdayRevenue, 0, 7),
		ByHour:    make([]models.HourRevenue, 0, 24),
	}
	for _, day := range weekdayOrder {
		report.ByWeekday = append(report.ByWeekday, models.WeekdayRevenue{
			Day:     day,
			Revenue: byDay[day],
		})
	}
	for hour, revenue := range byHour {
		report.ByHour = append(report.ByHour, models.HourRevenue{
			Hour:    hour,
			Revenue: revenue,
		})
	}
	return report
}
