package services

import (
	"testing"
	"time"
)

func TestFilter_Inclusivity(t *testing.T) {
	a := newTestAnalytics()

	// Bounds land exactly on the two January purchase dates.
	v := a.Filter(date(2018, 1, 5), date(2018, 1, 10))
	if len(v.Orders) != 2 {
		t.Errorf("expected 2 orders on exact bounds, got %d", len(v.Orders))
	}
	if len(v.Facts) != 2 {
		t.Errorf("expected 2 fact rows on exact bounds, got %d", len(v.Facts))
	}

	// One day inside either bound excludes both orders.
	v = a.Filter(date(2018, 1, 6), date(2018, 1, 9))
	if len(v.Orders) != 0 {
		t.Errorf("expected 0 orders one day inside bounds, got %d", len(v.Orders))
	}
}

func TestFilter_IgnoresTimeOfDay(t *testing.T) {
	a := newTestAnalytics()

	// O2 was purchased at 15:00 on the end date; the date portion decides.
	v := a.Filter(date(2018, 1, 10), date(2018, 1, 10))
	if len(v.Orders) != 1 || v.Orders[0].OrderID != "O2" {
		t.Fatalf("expected exactly O2, got %d orders", len(v.Orders))
	}
}

func TestFilter_InvertedRange(t *testing.T) {
	a := newTestAnalytics()

	v := a.Filter(date(2018, 2, 1), date(2018, 1, 1))
	if len(v.Orders) != 0 || len(v.Facts) != 0 {
		t.Errorf("inverted range should be empty, got %d orders, %d facts",
			len(v.Orders), len(v.Facts))
	}

	// Every page query over the empty view returns zero values, no panic.
	overview := a.Overview(v)
	if overview.TotalRevenue != 0 || overview.TotalOrders != 0 {
		t.Errorf("expected zero overview, got %+v", overview)
	}
	if overview.AvgOrderValue != 0 {
		t.Errorf("avg order value over zero orders = %v, want 0", overview.AvgOrderValue)
	}
	if len(overview.MonthlyRevenue) != 0 {
		t.Errorf("expected empty trend, got %d buckets", len(overview.MonthlyRevenue))
	}

	sales := a.Sales(v)
	if len(sales.ByWeekday) != 7 || len(sales.ByHour) != 24 {
		t.Errorf("empty view still emits full slots, got %d/%d",
			len(sales.ByWeekday), len(sales.ByHour))
	}

	if got := a.Products(v, 10); len(got.TopCategories) != 0 {
		t.Errorf("expected no categories, got %d", len(got.TopCategories))
	}
	if got := a.Customers(v); len(got.TopStates) != 0 {
		t.Errorf("expected no states, got %d", len(got.TopStates))
	}
	if got := a.Reviews(v); got.ScoreDistribution[0].Count != 0 {
		t.Errorf("expected zero review counts, got %+v", got.ScoreDistribution)
	}
	if got := a.Payments(v); len(got.TypeDistribution) != 0 {
		t.Errorf("expected no payment types, got %d", len(got.TypeDistribution))
	}
	if got := a.Delivery(v); len(got.FreightVsWeight) != 0 {
		t.Errorf("expected no scatter points, got %d", len(got.FreightVsWeight))
	}
}

func TestFilter_HasOrder(t *testing.T) {
	a := newTestAnalytics()

	v := a.Filter(date(2018, 1, 1), date(2018, 1, 31))
	if !v.HasOrder("O1") || !v.HasOrder("O2") {
		t.Error("January orders should be in the filtered set")
	}
	if v.HasOrder("O3") {
		t.Error("February order should not be in the January set")
	}
}

func TestFilter_ZeroTimestampExcluded(t *testing.T) {
	a := newTestAnalytics()

	// A range stretching to the epoch still excludes orders without a
	// purchase timestamp.
	v := a.Filter(time.Time{}.AddDate(1, 0, 0), date(2100, 1, 1))
	for _, o := range v.Orders {
		if o.PurchaseTimestamp.IsZero() {
			t.Error("order with zero purchase timestamp slipped through the filter")
		}
	}
}
