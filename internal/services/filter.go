package services

import (
	"time"

	"olist-dashboard/internal/models"
)

// View is the dataset restricted to a purchase-date interval. It carries the
// surviving order-id set so review and payment queries can restrict on order
// membership rather than on their own dates.
type View struct {
	Start time.Time
	End   time.Time

	Facts  []models.FactRow
	Orders []models.Order

	orderIDs map[string]struct{}
}

// HasOrder reports whether the order survived the date filter.
func (v *View) HasOrder(orderID string) bool {
	_, ok := v.orderIDs[orderID]
	return ok
}

// Filter restricts the fact table and the raw order table to rows whose
// purchase date falls inside [start, end], comparing dates only. An inverted
// range yields an empty view rather than an error; rejecting bad input is the
// caller's job.
func (a *Analytics) Filter(start, end time.Time) *View {
	a.mu.RLock()
	defer a.mu.RUnlock()

	v := &View{
		Start:    dateOnly(start),
		End:      dateOnly(end),
		orderIDs: make(map[string]struct{}),
	}
	if v.Start.After(v.End) {
		return v
	}

	for _, o := range a.tables.Orders {
		if inRange(o.PurchaseTimestamp, v.Start, v.End) {
			v.Orders = append(v.Orders, o)
			v.orderIDs[o.OrderID] = struct{}{}
		}
	}
	for _, f := range a.facts {
		if inRange(f.PurchaseTimestamp, v.Start, v.End) {
			v.Facts = append(v.Facts, f)
		}
	}
	return v
}

func inRange(ts, start, end time.Time) bool {
	if ts.IsZero() {
		return false
	}
	d := dateOnly(ts)
	return !d.Before(start) && !d.After(end)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
