// Package services implements the analytics core of the dashboard: the
// denormalized fact table, the date-range filter and the per-page report
// queries. All tables are immutable snapshots after load; every query is a
// pure read producing a new, smaller result.
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"olist-dashboard/internal/dataset"
	"olist-dashboard/internal/models"
)

type Analytics struct {
	mu     sync.RWMutex
	tables *models.Tables
	facts  []models.FactRow

	// Lookup maps derived from tables, rebuilt with the fact table.
	productByID map[string]models.Product

	loadOnce sync.Once
	loadErr  error

	logger *slog.Logger
}

func NewAnalytics() *Analytics {
	return &Analytics{
		tables: &models.Tables{},
		logger: slog.Default(),
	}
}

// Load reads the dataset from dir and builds the fact table. The work happens
// at most once per process; repeated calls return the first outcome. Call it
// before the HTTP server starts accepting requests.
func (a *Analytics) Load(ctx context.Context, dir string) error {
	a.loadOnce.Do(func() {
		loader := dataset.NewLoader(dir, a.logger)

		tables, err := loader.Load(ctx)
		if err != nil {
			a.loadErr = err
			return
		}

		start := time.Now()
		a.SetTables(tables)
		a.logger.Info("fact table built",
			"rows", len(a.facts),
			"duration", time.Since(start))
	})
	return a.loadErr
}

// SetTables installs a dataset snapshot directly and rebuilds the fact table.
// Tests use it to inject fixtures instead of files.
func (a *Analytics) SetTables(tables *models.Tables) {
	facts := buildFactTable(tables)

	productByID := make(map[string]models.Product, len(tables.Products))
	for _, p := range tables.Products {
		productByID[p.ProductID] = p
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.tables = tables
	a.facts = facts
	a.productByID = productByID
}

// DateRange returns the earliest and latest purchase dates in the dataset,
// truncated to the day. Both are zero when no order carries a timestamp.
func (a *Analytics) DateRange() (min, max time.Time) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, o := range a.tables.Orders {
		if o.PurchaseTimestamp.IsZero() {
			continue
		}
		d := dateOnly(o.PurchaseTimestamp)
		if min.IsZero() || d.Before(min) {
			min = d
		}
		if max.IsZero() || d.After(max) {
			max = d
		}
	}
	return min, max
}

// Stats reports dataset sizes for the admin endpoint.
func (a *Analytics) Stats() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return map[string]any{
		"orders":    len(a.tables.Orders),
		"items":     len(a.tables.Items),
		"products":  len(a.tables.Products),
		"customers": len(a.tables.Customers),
		"payments":  len(a.tables.Payments),
		"reviews":   len(a.tables.Reviews),
		"fact_rows": len(a.facts),
	}
}
