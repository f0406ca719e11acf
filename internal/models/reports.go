package models

// MonthlyRevenue is one bucket of the monthly revenue trend.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// OverviewReport holds the Overview page KPIs and trend.
type OverviewReport struct {
	TotalRevenue    float64          `json:"total_revenue"`
	TotalOrders     int              `json:"total_orders"`
	AvgOrderValue   float64          `json:"avg_order_value"`
	AvgDeliveryDays float64          `json:"avg_delivery_days"`
	DeliveredOrders int              `json:"delivered_orders"`
	MonthlyRevenue  []MonthlyRevenue `json:"monthly_revenue"`
}

// WeekdayRevenue is revenue for one weekday slot. The slice is always emitted
// in Monday..Sunday order, zero-revenue days included.
type WeekdayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// HourRevenue is revenue for one hour-of-day slot (0-23).
type HourRevenue struct {
	Hour    int     `json:"hour"`
	Revenue float64 `json:"revenue"`
}

// SalesReport holds the Sales Analysis page series.
type SalesReport struct {
	ByWeekday []WeekdayRevenue `json:"by_weekday"`
	ByHour    []HourRevenue    `json:"by_hour"`
}

// CategoryRevenue is one top-N category entry.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

// Bin is one fixed-width histogram bucket over [From, To).
type Bin struct {
	From  float64 `json:"from"`
	To    float64 `json:"to"`
	Count int     `json:"count"`
}

// ProductReport holds the Product Insights page series.
type ProductReport struct {
	TopN           int               `json:"top_n"`
	TopCategories  []CategoryRevenue `json:"top_categories"`
	PriceHistogram []Bin             `json:"price_histogram"`
}

// LocationCount counts fact rows per city or state.
type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// CustomerReport holds the Customer Demographics page series. Counts are
// fact-row (item-level) counts, matching the source dashboard.
type CustomerReport struct {
	TopStates []LocationCount `json:"top_states"`
	TopCities []LocationCount `json:"top_cities"`
}

// ScoreCount is the number of reviews at one score (1-5).
type ScoreCount struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// BoxStats summarizes a value distribution for box plotting. Zero Count means
// the remaining fields are meaningless.
type BoxStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// ScoreDelivery is the delivery-days distribution for one review score.
type ScoreDelivery struct {
	Score int      `json:"score"`
	Days  BoxStats `json:"days"`
}

// ReviewReport holds the Review Analysis page series.
type ReviewReport struct {
	ScoreDistribution []ScoreCount    `json:"score_distribution"`
	DeliveryByScore   []ScoreDelivery `json:"delivery_by_score"`
}

// PaymentTypeCount counts payment rows per payment type.
type PaymentTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// InstallmentCount counts payment rows per installment count.
type InstallmentCount struct {
	Installments int `json:"installments"`
	Count        int `json:"count"`
}

// PaymentTypeValues is the payment-value distribution for one payment type,
// clamped to values below 1000 for display.
type PaymentTypeValues struct {
	Type   string   `json:"type"`
	Values BoxStats `json:"values"`
}

// PaymentReport holds the Payment Analysis page series.
type PaymentReport struct {
	TypeDistribution []PaymentTypeCount  `json:"type_distribution"`
	Installments     []InstallmentCount  `json:"installments"`
	ValuesByType     []PaymentTypeValues `json:"values_by_type"`
}

// DayCount is the number of orders delivered in exactly Days days.
type DayCount struct {
	Days  int `json:"days"`
	Count int `json:"count"`
}

// FreightPoint is one freight-value vs product-weight scatter point.
type FreightPoint struct {
	WeightG      float64 `json:"weight_g"`
	FreightValue float64 `json:"freight_value"`
}

// StateFreight is the mean freight value for one customer state.
type StateFreight struct {
	State       string  `json:"state"`
	MeanFreight float64 `json:"mean_freight"`
}

// DeliveryReport holds the Delivery Analysis page series.
type DeliveryReport struct {
	DaysHistogram   []DayCount     `json:"days_histogram"`
	FreightVsWeight []FreightPoint `json:"freight_vs_weight"`
	FreightByState  []StateFreight `json:"freight_by_state"`
}
