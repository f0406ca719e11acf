package main

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"olist-dashboard/internal/models"
	"olist-dashboard/internal/server"
	"olist-dashboard/internal/services"
)

// Test helper to create analytics with test data
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
				PurchaseTimestamp:     time.Date(2018, 2, 10, 15, 0, 0, 0, time.UTC),
				DeliveredCustomerDate: time.Date(2018, 2, 22, 15, 0, 0, 0, time.UTC),
			},
		},
		Items: []models.OrderItem{
			{OrderID: "O1", OrderItemID: 1, ProductID: "P1", Price: 120, FreightValue: 12},
			{OrderID: "O2", OrderItemID: 1, ProductID: "P2", Price: 35, FreightValue: 7},
		},
		Products: []models.Product{
			{ProductID: "P1", CategoryName: "beleza_saude", WeightG: 400},
			{ProductID: "P2", CategoryName: "brinquedos", WeightG: math.NaN()},
		},
		Customers: []models.Customer{
			{CustomerID: "C1", City: "sao paulo", State: "SP"},
			{CustomerID: "C2", City: "curitiba", State: "PR"},
		},
		Payments: []models.Payment{
			{OrderID: "O1", Sequential: 1, Type: "credit_card", Installments: 3, Value: 132},
			{OrderID: "O2", Sequential: 1, Type: "boleto", Installments: 1, Value: 42},
		},
		Reviews: []models.Review{
			{ReviewID: "R1", OrderID: "O1", Score: 4, CreationDate: time.Date(2018, 1, 16, 0, 0, 0, 0, time.UTC)},
		},
		CategoryTranslation: map[string]string{
			"beleza_saude": "health_beauty",
			"brinquedos":   "toys",
		},
	})
	return a
}

func newTestServer() *server.Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	templateHandlers := &server.TemplateHandlers{Dashboard: handleDashboard}
	return server.NewServer(newTestAnalytics(), logger, templateHandlers)
}

// Integration tests for HTTP routes
func TestServer_Routes(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		path           string
		expectedStatus int
		contentType    string
	}{
		{"/", http.StatusOK, "text/html"},
		{"/health", http.StatusOK, "application/json"},
		{"/admin/stats", http.StatusOK, "application/json"},
		{"/api/overview", http.StatusOK, "application/json"},
		{"/api/sales", http.StatusOK, "application/json"},
		{"/api/products", http.StatusOK, "application/json"},
		{"/api/customers", http.StatusOK, "application/json"},
		{"/api/reviews", http.StatusOK, "application/json"},
		{"/api/payments", http.StatusOK, "application/json"},
		{"/api/delivery", http.StatusOK, "application/json"},
		{"/api/pages", http.StatusOK, "application/json"},
		{"/api/range", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			ct := w.Header().Get("Content-Type")
			if !strings.Contains(ct, tt.contentType) {
				t.Errorf("content-type = %q, want %q", ct, tt.contentType)
			}

			// Validate JSON responses
			if tt.contentType == "application/json" {
				var result any
				if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
					t.Errorf("invalid json: %v", err)
				}
			}
		})
	}
}

// Test JSON API responses
func TestServer_JSONResponse(t *testing.T) {
	srv := newTestServer()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/overview?start=2018-01-01&end=2018-01-31", nil)
	srv.ServeHTTP(w, r)

	var response map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode JSON: %v", err)
	}

	if success, ok := response["success"].(bool); !ok || !success {
		t.Error("expected success=true in response")
	}

	data, ok := response["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected state object in response")
	}

	overview, ok := data["overview"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected overview report in state")
	}

	if revenue, ok := overview["total_revenue"].(float64); !ok || revenue != 120 {
		t.Errorf("total_revenue = %v, want 120", overview["total_revenue"])
	}
	if orders, ok := overview["total_orders"].(float64); !ok || orders != 1 {
		t.Errorf("total_orders = %v, want 1", overview["total_orders"])
	}
}

// Test Server-Sent Events route
func TestServer_SSERoute(t *testing.T) {
	srv := newTestServer()

	for _, page := range services.Pages {
		t.Run(string(page), func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/sse/dashboard?page="+string(page), nil)

			srv.ServeHTTP(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}

			// Check for SSE headers
			if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/event-stream") {
				t.Errorf("content-type = %q, should contain 'text/event-stream'", ct)
			}

			if !strings.Contains(w.Body.String(), string(page)+" loaded") {
				t.Errorf("missing status patch for %s", page)
			}
		})
	}
}

// Test error handling for invalid methods
func TestServer_ErrorHandling(t *testing.T) {
	srv := newTestServer()

	tests := []struct {
		method string
		path   string
		status int
	}{
		{"POST", "/api/overview", http.StatusMethodNotAllowed},
		{"PUT", "/", http.StatusMethodNotAllowed},
		{"DELETE", "/health", http.StatusMethodNotAllowed},
		{"PATCH", "/api/products", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tt.method, tt.path, nil)

			srv.ServeHTTP(w, r)

			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
		})
	}
}

// Test dashboard template rendering
func TestDashboardTemplate(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	// Test the template handler directly
	handleDashboard(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Olist E-commerce Dashboard") {
		t.Error("dashboard should contain title")
	}

	// Check for the sidebar page selectors
	expectedComponents := []string{
		"Overview",
		"Sales Analysis",
		"Product Insights",
		"Customer Demographics",
		"Review Analysis",
		"Payment Analysis",
		"Delivery Analysis",
	}

	for _, component := range expectedComponents {
		if !strings.Contains(body, component) {
			t.Errorf("dashboard should contain '%s'", component)
		}
	}

	if !strings.Contains(body, "/sse/dashboard") {
		t.Error("dashboard should wire the SSE endpoint")
	}
}
