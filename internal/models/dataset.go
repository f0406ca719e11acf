package models

import "time"

// Order mirrors olist_orders_dataset.csv. Timestamp columns that are empty in
// the source file are zero time.Time values; DeliveredCustomerDate in
// particular is zero for orders still in transit.
type Order struct {
	OrderID               string
	CustomerID            string
	Status                string
	PurchaseTimestamp     time.Time
	ApprovedAt            time.Time
	DeliveredCarrierDate  time.Time
	DeliveredCustomerDate time.Time
	EstimatedDeliveryDate time.Time
}

// Delivered reports whether the order reached the customer.
func (o Order) Delivered() bool {
	return !o.DeliveredCustomerDate.IsZero()
}

// DeliveryDays is the whole number of days between purchase and customer
// delivery. The boolean is false for undelivered orders.
func (o Order) DeliveryDays() (int, bool) {
	if !o.Delivered() || o.PurchaseTimestamp.IsZero() {
		return 0, false
	}
	return int(o.DeliveredCustomerDate.Sub(o.PurchaseTimestamp) / (24 * time.Hour)), true
}

// OrderItem mirrors olist_order_items_dataset.csv, keyed by
// (order_id, order_item_id).
type OrderItem struct {
	OrderID           string
	OrderItemID       int
	ProductID         string
	SellerID          string
	ShippingLimitDate time.Time
	Price             float64
	FreightValue      float64
}

// Product mirrors olist_products_dataset.csv. WeightG is NaN when the source
// cell is empty.
type Product struct {
	ProductID       string
	CategoryName    string
	CategoryEnglish string
	WeightG         float64
	LengthCM        float64
	HeightCM        float64
	WidthCM         float64
}

// Customer mirrors olist_customers_dataset.csv.
type Customer struct {
	CustomerID string
	UniqueID   string
	ZipPrefix  string
	City       string
	State      string
}

// Payment mirrors olist_order_payments_dataset.csv, keyed by
// (order_id, payment_sequential). One order may carry several payment rows.
type Payment struct {
	OrderID      string
	Sequential   int
	Type         string
	Installments int
	Value        float64
}

// Review mirrors olist_order_reviews_dataset.csv. ReviewID is not unique in
// the source data and order ids may repeat.
type Review struct {
	ReviewID        string
	OrderID         string
	Score           int
	CreationDate    time.Time
	AnswerTimestamp time.Time
}

// Seller mirrors olist_sellers_dataset.csv.
type Seller struct {
	SellerID  string
	ZipPrefix string
	City      string
	State     string
}

// Geolocation mirrors olist_geolocation_dataset.csv.
type Geolocation struct {
	ZipPrefix string
	Lat       float64
	Lng       float64
	City      string
	State     string
}

// Tables holds the normalized dataset as loaded from disk. All slices are
// immutable after load.
type Tables struct {
	Orders       []Order
	Items        []OrderItem
	Products     []Product
	Customers    []Customer
	Payments     []Payment
	Reviews      []Review
	Sellers      []Seller
	Geolocations []Geolocation
	// CategoryTranslation maps raw Portuguese category names to English.
	CategoryTranslation map[string]string
}

// FactRow is one denormalized row of the fact table: exactly one per order
// item, left-joined with order, product and customer attributes. Unmatched
// product columns keep zero values (Category "", WeightG NaN); unmatched
// customer columns keep empty strings.
type FactRow struct {
	OrderID      string
	OrderItemID  int
	ProductID    string
	SellerID     string
	Price        float64
	FreightValue float64

	CustomerID            string
	Status                string
	PurchaseTimestamp     time.Time
	DeliveredCustomerDate time.Time

	// Category is the English category name, falling back to the raw
	// Portuguese name when no translation exists.
	Category string
	WeightG  float64

	CustomerCity  string
	CustomerState string

	// Calendar fields derived from PurchaseTimestamp.
	MonthYear string
	Year      int
	DayOfWeek string
	Hour      int
}
