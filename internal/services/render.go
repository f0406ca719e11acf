package services

import (
	"fmt"
	"time"

	"olist-dashboard/internal/models"
)

// Page selects one of the seven report pages.
type Page string

const (
	PageOverview  Page = "overview"
	PageSales     Page = "sales"
	PageProducts  Page = "products"
	PageCustomers Page = "customers"
	PageReviews   Page = "reviews"
	PagePayments  Page = "payments"
	PageDelivery  Page = "delivery"
)

// Pages lists every report page in sidebar order.
var Pages = []Page{
	PageOverview, PageSales, PageProducts, PageCustomers,
	PageReviews, PagePayments, PageDelivery,
}

// ValidPage reports whether p names a report page.
func ValidPage(p Page) bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

// DashboardState is everything one render of the dashboard needs: the page,
// the applied filter, and exactly one populated report.
type DashboardState struct {
	Page  Page   `json:"page"`
	Start string `json:"start"`
	End   string `json:"end"`
	TopN  int    `json:"top_n,omitempty"`

	Overview  *models.OverviewReport `json:"overview,omitempty"`
	Sales     *models.SalesReport    `json:"sales,omitempty"`
	Products  *models.ProductReport  `json:"products,omitempty"`
	Customers *models.CustomerReport `json:"customers,omitempty"`
	Reviews   *models.ReviewReport   `json:"reviews,omitempty"`
	Payments  *models.PaymentReport  `json:"payments,omitempty"`
	Delivery  *models.DeliveryReport `json:"delivery,omitempty"`
}

// Render recomputes one page for a date range: the filter runs, the page's
// queries run against the filtered view, and the result goes back as a plain
// value. Rendering technology stays out of the core; callers draw whatever
// this returns. topN only applies to the products page.
func (a *Analytics) Render(page Page, start, end time.Time, topN int) (*DashboardState, error) {
	if !ValidPage(page) {
		return nil, fmt.Errorf("unknown page %q", page)
	}

	v := a.Filter(start, end)
	state := &DashboardState{
		Page:  page,
		Start: v.Start.Format("2006-01-02"),
		End:   v.End.Format("2006-01-02"),
	}

	switch page {
	case PageOverview:
		r := a.Overview(v)
		state.Overview = &r
	case PageSales:
		r := a.Sales(v)
		state.Sales = &r
	case PageProducts:
		r := a.Products(v, topN)
		state.TopN = r.TopN
		state.Products = &r
	case PageCustomers:
		r := a.Customers(v)
		state.Customers = &r
	case PageReviews:
		r := a.Reviews(v)
		state.Reviews = &r
	case PagePayments:
		r := a.Payments(v)
		state.Payments = &r
	case PageDelivery:
		r := a.Delivery(v)
		state.Delivery = &r
	}
	return state, nil
}
