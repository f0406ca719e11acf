// Package dataset loads the nine Olist CSV files into normalized in-memory
// tables. The dataset is static, so a parsed copy is cached to disk and
// reused across process restarts.
package dataset

import (
	"context"
	"encoding/csv"
	"encoding/gob"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"olist-dashboard/internal/models"
)

// Fixed file names of the dataset contract.
const (
	OrdersFile      = "olist_orders_dataset.csv"
	ItemsFile       = "olist_order_items_dataset.csv"
	ProductsFile    = "olist_products_dataset.csv"
	PaymentsFile    = "olist_order_payments_dataset.csv"
	ReviewsFile     = "olist_order_reviews_dataset.csv"
	CustomersFile   = "olist_customers_dataset.csv"
	SellersFile     = "olist_sellers_dataset.csv"
	GeolocationFile = "olist_geolocation_dataset.csv"
	TranslationFile = "product_category_name_translation.csv"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	cacheVersion    = "v1"
	cacheDir        = ".cache"
)

// Files lists all nine required dataset files.
var Files = []string{
	OrdersFile, ItemsFile, ProductsFile, PaymentsFile, ReviewsFile,
	CustomersFile, SellersFile, GeolocationFile, TranslationFile,
}

// LoadError reports a missing, unreadable or malformed dataset file. It is
// fatal to the caller; there is no meaningful dashboard without the base data.
type LoadError struct {
	File string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader reads the dataset from a fixed directory.
type Loader struct {
	dir    string
	logger *slog.Logger
}

func NewLoader(dir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{dir: dir, logger: logger}
}

// Load parses all nine files, reading them concurrently. A valid disk cache
// newer than every source file short-circuits the parse.
func (l *Loader) Load(ctx context.Context) (*models.Tables, error) {
	if cached, err := l.loadFromCache(); err == nil {
		l.logger.Info("dataset loaded from cache",
			"dir", l.dir,
			"orders", len(cached.Orders),
			"items", len(cached.Items))
		return cached, nil
	}

	start := time.Now()
	tables := &models.Tables{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.parse(ctx, OrdersFile, func(t *table) error { return t.orders(&tables.Orders) }) })
	g.Go(func() error { return l.parse(ctx, ItemsFile, func(t *table) error { return t.items(&tables.Items) }) })
	g.Go(func() error { return l.parse(ctx, ProductsFile, func(t *table) error { return t.products(&tables.Products) }) })
	g.Go(func() error { return l.parse(ctx, PaymentsFile, func(t *table) error { return t.payments(&tables.Payments) }) })
	g.Go(func() error { return l.parse(ctx, ReviewsFile, func(t *table) error { return t.reviews(&tables.Reviews) }) })
	g.Go(func() error { return l.parse(ctx, CustomersFile, func(t *table) error { return t.customers(&tables.Customers) }) })
	g.Go(func() error { return l.parse(ctx, SellersFile, func(t *table) error { return t.sellers(&tables.Sellers) }) })
	g.Go(func() error { return l.parse(ctx, GeolocationFile, func(t *table) error { return t.geolocations(&tables.Geolocations) }) })
	g.Go(func() error {
		return l.parse(ctx, TranslationFile, func(t *table) error { return t.translations(&tables.CategoryTranslation) })
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := l.saveToCache(tables); err != nil {
		l.logger.Warn("failed to save dataset cache", "error", err)
	}

	l.logger.Info("dataset loaded",
		"dir", l.dir,
		"orders", len(tables.Orders),
		"items", len(tables.Items),
		"products", len(tables.Products),
		"reviews", len(tables.Reviews),
		"payments", len(tables.Payments),
		"duration", time.Since(start))

	return tables, nil
}

func (l *Loader) parse(ctx context.Context, file string, fn func(*table) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t, err := l.readTable(file)
	if err != nil {
		return &LoadError{File: file, Err: err}
	}
	if err := fn(t); err != nil {
		return &LoadError{File: file, Err: err}
	}
	return nil
}

// table is one raw CSV file with a header index.
type table struct {
	cols map[string]int
	rows [][]string
}

func (l *Loader) readTable(file string) (*table, error) {
	f, err := os.Open(filepath.Join(l.dir, file))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = false
	// Review comments contain stray quotes and embedded newlines.
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.TrimSpace(name)] = i
	}
	return &table{cols: cols, rows: records[1:]}, nil
}

func (t *table) index(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		pos, ok := t.cols[name]
		if !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
		idx[i] = pos
	}
	return idx, nil
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(timestampLayout, value)
}

// parseFloat treats an empty cell as NaN, the loader's null representation
// for optional numerics.
func parseFloat(value string) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(value, 64)
}

func (t *table) orders(out *[]models.Order) error {
	idx, err := t.index("order_id", "customer_id", "order_status",
		"order_purchase_timestamp", "order_approved_at",
		"order_delivered_carrier_date", "order_delivered_customer_date",
		"order_estimated_delivery_date")
	if err != nil {
		return err
	}

	orders := make([]models.Order, 0, len(t.rows))
	for n, row := range t.rows {
		o := models.Order{
			OrderID:    row[idx[0]],
			CustomerID: row[idx[1]],
			Status:     row[idx[2]],
		}
		dates := []*time.Time{
			&o.PurchaseTimestamp, &o.ApprovedAt, &o.DeliveredCarrierDate,
			&o.DeliveredCustomerDate, &o.EstimatedDeliveryDate,
		}
		for i, dst := range dates {
			v, err := parseTime(row[idx[3+i]])
			if err != nil {
				return fmt.Errorf("row %d: %w", n+2, err)
			}
			*dst = v
		}
		orders = append(orders, o)
	}
	*out = orders
	return nil
}

func (t *table) items(out *[]models.OrderItem) error {
	idx, err := t.index("order_id", "order_item_id", "product_id", "seller_id",
		"shipping_limit_date", "price", "freight_value")
	if err != nil {
		return err
	}

	items := make([]models.OrderItem, 0, len(t.rows))
	for n, row := range t.rows {
		itemID, err := strconv.Atoi(strings.TrimSpace(row[idx[1]]))
		if err != nil {
			return fmt.Errorf("row %d: order_item_id: %w", n+2, err)
		}
		limit, err := parseTime(row[idx[4]])
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(row[idx[5]]), 64)
		if err != nil {
			return fmt.Errorf("row %d: price: %w", n+2, err)
		}
		freight, err := strconv.ParseFloat(strings.TrimSpace(row[idx[6]]), 64)
		if err != nil {
			return fmt.Errorf("row %d: freight_value: %w", n+2, err)
		}
		items = append(items, models.OrderItem{
			OrderID:           row[idx[0]],
			OrderItemID:       itemID,
			ProductID:         row[idx[2]],
			SellerID:          row[idx[3]],
			ShippingLimitDate: limit,
			Price:             price,
			FreightValue:      freight,
		})
	}
	*out = items
	return nil
}

func (t *table) products(out *[]models.Product) error {
	idx, err := t.index("product_id", "product_category_name",
		"product_weight_g", "product_length_cm", "product_height_cm",
		"product_width_cm")
	if err != nil {
		return err
	}

	products := make([]models.Product, 0, len(t.rows))
	for n, row := range t.rows {
		p := models.Product{
			ProductID:    row[idx[0]],
			CategoryName: row[idx[1]],
		}
		dims := []*float64{&p.WeightG, &p.LengthCM, &p.HeightCM, &p.WidthCM}
		for i, dst := range dims {
			v, err := parseFloat(row[idx[2+i]])
			if err != nil {
				return fmt.Errorf("row %d: %w", n+2, err)
			}
			*dst = v
		}
		products = append(products, p)
	}
	*out = products
	return nil
}

func (t *table) payments(out *[]models.Payment) error {
	idx, err := t.index("order_id", "payment_sequential", "payment_type",
		"payment_installments", "payment_value")
	if err != nil {
		return err
	}

	payments := make([]models.Payment, 0, len(t.rows))
	for n, row := range t.rows {
		seq, err := strconv.Atoi(strings.TrimSpace(row[idx[1]]))
		if err != nil {
			return fmt.Errorf("row %d: payment_sequential: %w", n+2, err)
		}
		installments, err := strconv.Atoi(strings.TrimSpace(row[idx[3]]))
		if err != nil {
			return fmt.Errorf("row %d: payment_installments: %w", n+2, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[idx[4]]), 64)
		if err != nil {
			return fmt.Errorf("row %d: payment_value: %w", n+2, err)
		}
		payments = append(payments, models.Payment{
			OrderID:      row[idx[0]],
			Sequential:   seq,
			Type:         row[idx[2]],
			Installments: installments,
			Value:        value,
		})
	}
	*out = payments
	return nil
}

func (t *table) reviews(out *[]models.Review) error {
	idx, err := t.index("review_id", "order_id", "review_score",
		"review_creation_date", "review_answer_timestamp")
	if err != nil {
		return err
	}

	reviews := make([]models.Review, 0, len(t.rows))
	for n, row := range t.rows {
		score, err := strconv.Atoi(strings.TrimSpace(row[idx[2]]))
		if err != nil {
			return fmt.Errorf("row %d: review_score: %w", n+2, err)
		}
		created, err := parseTime(row[idx[3]])
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		answered, err := parseTime(row[idx[4]])
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		reviews = append(reviews, models.Review{
			ReviewID:        row[idx[0]],
			OrderID:         row[idx[1]],
			Score:           score,
			CreationDate:    created,
			AnswerTimestamp: answered,
		})
	}
	*out = reviews
	return nil
}

func (t *table) customers(out *[]models.Customer) error {
	idx, err := t.index("customer_id", "customer_unique_id",
		"customer_zip_code_prefix", "customer_city", "customer_state")
	if err != nil {
		return err
	}

	customers := make([]models.Customer, 0, len(t.rows))
	for _, row := range t.rows {
		customers = append(customers, models.Customer{
			CustomerID: row[idx[0]],
			UniqueID:   row[idx[1]],
			ZipPrefix:  row[idx[2]],
			City:       row[idx[3]],
			State:      row[idx[4]],
		})
	}
	*out = customers
	return nil
}

func (t *table) sellers(out *[]models.Seller) error {
	idx, err := t.index("seller_id", "seller_zip_code_prefix", "seller_city",
		"seller_state")
	if err != nil {
		return err
	}

	sellers := make([]models.Seller, 0, len(t.rows))
	for _, row := range t.rows {
		sellers = append(sellers, models.Seller{
			SellerID:  row[idx[0]],
			ZipPrefix: row[idx[1]],
			City:      row[idx[2]],
			State:     row[idx[3]],
		})
	}
	*out = sellers
	return nil
}

func (t *table) geolocations(out *[]models.Geolocation) error {
	idx, err := t.index("geolocation_zip_code_prefix", "geolocation_lat",
		"geolocation_lng", "geolocation_city", "geolocation_state")
	if err != nil {
		return err
	}

	geos := make([]models.Geolocation, 0, len(t.rows))
	for n, row := range t.rows {
		lat, err := parseFloat(row[idx[1]])
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		lng, err := parseFloat(row[idx[2]])
		if err != nil {
			return fmt.Errorf("row %d: %w", n+2, err)
		}
		geos = append(geos, models.Geolocation{
			ZipPrefix: row[idx[0]],
			Lat:       lat,
			Lng:       lng,
			City:      row[idx[3]],
			State:     row[idx[4]],
		})
	}
	*out = geos
	return nil
}

func (t *table) translations(out *map[string]string) error {
	idx, err := t.index("product_category_name", "product_category_name_english")
	if err != nil {
		return err
	}

	translation := make(map[string]string, len(t.rows))
	for _, row := range t.rows {
		translation[row[idx[0]]] = row[idx[1]]
	}
	*out = translation
	return nil
}

// Cache management

type cachedTables struct {
	Tables  *models.Tables
	SavedAt time.Time
}

func (l *Loader) cacheFilename() string {
	return fmt.Sprintf("%s/%s_%s.gob", cacheDir, strings.ReplaceAll(l.dir, "/", "_"), cacheVersion)
}

func (l *Loader) saveToCache(tables *models.Tables) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return err
	}

	f, err := os.Create(l.cacheFilename())
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(cachedTables{Tables: tables, SavedAt: time.Now()})
}

func (l *Loader) loadFromCache() (*models.Tables, error) {
	f, err := os.Open(l.cacheFilename())
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cached cachedTables
	if err := gob.NewDecoder(f).Decode(&cached); err != nil {
		return nil, err
	}
	if cached.Tables == nil {
		return nil, fmt.Errorf("empty cache")
	}

	// Any source file newer than the cache invalidates it.
	for _, file := range Files {
		info, err := os.Stat(filepath.Join(l.dir, file))
		if err != nil {
			return nil, err
		}
		if info.ModTime().After(cached.SavedAt) {
			return nil, fmt.Errorf("cache stale: %s modified", file)
		}
	}

	return cached.Tables, nil
}
