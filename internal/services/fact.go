package services

import (
	"math"

	"olist-dashboard/internal/models"
)

// buildFactTable denormalizes the dataset into one row per order item.
// Join order matters for correctness: category translation first, then
// order, product and customer attributes. product_id and customer_id are
// unique keys on their tables, so no item row is ever duplicated or dropped;
// the output length always equals the item count.
func buildFactTable(t *models.Tables) []models.FactRow {
	orderByID := make(map[string]models.Order, len(t.Orders))
	for _, o := range t.Orders {
		orderByID[o.OrderID] = o
	}
	productByID := make(map[string]models.Product, len(t.Products))
	for _, p := range t.Products {
		productByID[p.ProductID] = p
	}
	customerByID := make(map[string]models.Customer, len(t.Customers))
	for _, c := range t.Customers {
		customerByID[c.CustomerID] = c
	}

	facts := make([]models.FactRow, 0, len(t.Items))
	for _, item := range t.Items {
		row := models.FactRow{
			OrderID:      item.OrderID,
			OrderItemID:  item.OrderItemID,
			ProductID:    item.ProductID,
			SellerID:     item.SellerID,
			Price:        item.Price,
			FreightValue: item.FreightValue,
			WeightG:      math.NaN(),
		}

		if o, ok := orderByID[item.OrderID]; ok {
			row.CustomerID = o.CustomerID
			row.Status = o.Status
			row.PurchaseTimestamp = o.PurchaseTimestamp
			row.DeliveredCustomerDate = o.DeliveredCustomerDate

			if !o.PurchaseTimestamp.IsZero() {
				row.MonthYear = o.PurchaseTimestamp.Format("2006-01")
				row.Year = o.PurchaseTimestamp.Year()
				row.DayOfWeek = o.PurchaseTimestamp.Weekday().String()
				row.Hour = o.PurchaseTimestamp.Hour()
			}

			if c, ok := customerByID[o.CustomerID]; ok {
				row.CustomerCity = c.City
				row.CustomerState = c.State
			}
		}

		if p, ok := productByID[item.ProductID]; ok {
			row.Category = translateCategory(p.CategoryName, t.CategoryTranslation)
			row.WeightG = p.WeightG
		}

		facts = append(facts, row)
	}
	return facts
}

// translateCategory maps a raw category name to English, keeping the raw
// name when no translation exists so unknown categories are never silently
// dropped from group-bys. Uncategorized products stay empty.
func translateCategory(raw string, translation map[string]string) string {
	if raw == "" {
		return ""
	}
	if english, ok := translation[raw]; ok && english != "" {
		return english
	}
	return raw
}
