package handlers

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"olist-dashboard/internal/models"
	"olist-dashboard/internal/services"
)

// newTestAnalytics builds two January 2018 orders (prices 100 and 50) and one
// February order so date filtering has something to cut.
func newTestAnalytics() *services.Analytics {
	a := services.NewAnalytics()
	a.SetTables(&models.Tables{
		Orders: []models.Order{
			{
				OrderID:               "O1",
				CustomerID:            "C1",
				Status:                "delivered",
				PurchaseTimestamp:     time.Date(2018, 1, 5, 10, 0, 0, 0, time.UTC),
				DeliveredCustomerDate: time.Date(2018, 1, 15, 10, 0, 0, 0, time.UTC),
			},
			{
				OrderID:               "O2",
				CustomerID:            "C2",
				Status:                "delivered",
				PurchaseTimestamp:     time.Date(2018, 1, 10, 15, 0, 0, 0, time.UTC),
				DeliveredCustomerDate: time.Date(2018, 1, 20, 15, 0, 0, 0, time.UTC),
			},
			{
				OrderID:           "O3",
				CustomerID:        "C1",
				Status:            "shipped",
				PurchaseTimestamp: time.Date(2018, 2, 1, 8, 0, 0, 0, time.UTC),
			},
		},
		Items: []models.OrderItem{
			{OrderID: "O1", OrderItemID: 1, ProductID: "P1", Price: 100, FreightValue: 10},
			{OrderID: "O2", OrderItemID: 1, ProductID: "P2", Price: 50, FreightValue: 5},
			{OrderID: "O3", OrderItemID: 1, ProductID: "P1", Price: 75, FreightValue: 8},
		},
		Products: []models.Product{
			{ProductID: "P1", CategoryName: "beleza_saude", WeightG: 500},
			{ProductID: "P2", CategoryName: "esporte_lazer", WeightG: math.NaN()},
		},
		Customers: []models.Customer{
			{CustomerID: "C1", City: "sao paulo", State: "SP"},
			{CustomerID: "C2", City: "rio de janeiro", State: "RJ"},
		},
		Payments: []models.Payment{
			{OrderID: "O1", Sequential: 1, Type: "credit_card", Installments: 1, Value: 110},
			{OrderID: "O2", Sequential: 1, Type: "boleto", Installments: 1, Value: 55},
		},
		Reviews: []models.Review{
			{ReviewID: "R1", OrderID: "O1", Score: 5, CreationDate: time.Date(2018, 1, 16, 0, 0, 0, 0, time.UTC)},
		},
		CategoryTranslation: map[string]string{
			"beleza_saude":  "health_beauty",
			"esporte_lazer": "sports_leisure",
		},
	})
	return a
}

func newTestAPI() *APIHandlers {
	return NewAPIHandlers(newTestAnalytics(), slog.New(slog.DiscardHandler))
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func doJSON(t *testing.T, handler http.HandlerFunc, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a JSON envelope: %v\n%s", err, rec.Body.String())
	}
	return rec, env
}

func TestHandleOverview(t *testing.T) {
	h := newTestAPI()
	rec, env := doJSON(t, h.HandleOverview, "/api/overview?start=2018-01-01&end=2018-01-31")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !env.Success {
		t.Fatal("success = false, want true")
	}
	if got := rec.Header().Get("Cache-Control"); got != cacheControl {
		t.Errorf("Cache-Control = %q, want %q", got, cacheControl)
	}

	var state services.DashboardState
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatalf("unmarshal state: %v", err)
	}
	if state.Page != services.PageOverview {
		t.Errorf("page = %q, want overview", state.Page)
	}
	if state.Overview == nil {
		t.Fatal("overview report missing")
	}
	if state.Overview.TotalRevenue != 150 {
		t.Errorf("total revenue = %v, want 150", state.Overview.TotalRevenue)
	}
	if state.Overview.TotalOrders != 2 {
		t.Errorf("total orders = %d, want 2", state.Overview.TotalOrders)
	}
}

func TestHandleOverview_DefaultsToFullRange(t *testing.T) {
	h := newTestAPI()
	_, env := doJSON(t, h.HandleOverview, "/api/overview")

	var state services.DashboardState
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatal(err)
	}
	if state.Start != "2018-01-05" || state.End != "2018-02-01" {
		t.Errorf("default range = %s..%s, want 2018-01-05..2018-02-01", state.Start, state.End)
	}
	if state.Overview.TotalOrders != 3 {
		t.Errorf("total orders = %d, want 3", state.Overview.TotalOrders)
	}
}

func TestHandleOverview_BadDate(t *testing.T) {
	h := newTestAPI()
	rec, env := doJSON(t, h.HandleOverview, "/api/overview?start=05-01-2018")

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	if len(env.Error) == 0 {
		t.Error("error payload missing")
	}
}

func TestHandleProducts_BadTopN(t *testing.T) {
	h := newTestAPI()
	rec, _ := doJSON(t, h.HandleProducts, "/api/products?top_n=many")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleProducts_ClampsTopN(t *testing.T) {
	h := newTestAPI()
	_, env := doJSON(t, h.HandleProducts, "/api/products?top_n=99")

	var state services.DashboardState
	if err := json.Unmarshal(env.Data, &state); err != nil {
		t.Fatal(err)
	}
	if state.TopN != services.MaxTopN {
		t.Errorf("top_n = %d, want %d", state.TopN, services.MaxTopN)
	}
}

func TestHandleRange(t *testing.T) {
	h := newTestAPI()
	_, env := doJSON(t, h.HandleRange, "/api/range")

	var rangeData map[string]string
	if err := json.Unmarshal(env.Data, &rangeData); err != nil {
		t.Fatal(err)
	}
	if rangeData["min"] != "2018-01-05" || rangeData["max"] != "2018-02-01" {
		t.Errorf("range = %v, want 2018-01-05..2018-02-01", rangeData)
	}
}

func TestHandleRange_EmptyDataset(t *testing.T) {
	a := services.NewAnalytics()
	a.SetTables(&models.Tables{})
	h := NewAPIHandlers(a, slog.New(slog.DiscardHandler))

	_, env := doJSON(t, h.HandleRange, "/api/range")

	var rangeData map[string]string
	if err := json.Unmarshal(env.Data, &rangeData); err != nil {
		t.Fatal(err)
	}
	if rangeData["min"] != "" || rangeData["max"] != "" {
		t.Errorf("empty dataset range = %v, want empty strings", rangeData)
	}
}

func TestHandlePages(t *testing.T) {
	h := newTestAPI()
	_, env := doJSON(t, h.HandlePages, "/api/pages")

	var pages []services.Page
	if err := json.Unmarshal(env.Data, &pages); err != nil {
		t.Fatal(err)
	}
	if len(pages) != 7 {
		t.Errorf("pages = %d, want 7", len(pages))
	}
	if pages[0] != services.PageOverview {
		t.Errorf("first page = %q, want overview", pages[0])
	}
}

func TestHandleHealth(t *testing.T) {
	h := newTestAPI()
	rec, env := doJSON(t, h.HandleHealth, "/health")

	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("status/success = %d/%v, want 200/true", rec.Code, env.Success)
	}

	var health map[string]string
	if err := json.Unmarshal(env.Data, &health); err != nil {
		t.Fatal(err)
	}
	if health["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", health["status"])
	}
}

func TestHandleStats(t *testing.T) {
	h := newTestAPI()
	_, env := doJSON(t, h.HandleStats, "/admin/stats")

	var stats map[string]any
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatal(err)
	}
	if stats["orders"] != float64(3) {
		t.Errorf("orders = %v, want 3", stats["orders"])
	}
}

func TestEveryPageEndpoint(t *testing.T) {
	h := newTestAPI()
	endpoints := map[string]http.HandlerFunc{
		"overview":  h.HandleOverview,
		"sales":     h.HandleSales,
		"products":  h.HandleProducts,
		"customers": h.HandleCustomers,
		"reviews":   h.HandleReviews,
		"payments":  h.HandlePayments,
		"delivery":  h.HandleDelivery,
	}
	for name, handler := range endpoints {
		rec, env := doJSON(t, handler, "/api/"+name)
		if rec.Code != http.StatusOK || !env.Success {
			t.Errorf("%s: status/success = %d/%v, want 200/true", name, rec.Code, env.Success)
		}
	}
}
