package datagen

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"olist-dashboard/internal/dataset"
)

const timestampLayout = "2006-01-02 15:04:05"

// categoryTranslations maps Portuguese category names to English. A few
// categories are deliberately left out of the translation file, matching the
// real dataset and exercising the dashboard's raw-name fallback.
var categoryTranslations = map[string]string{
	"beleza_saude":           "health_beauty",
	"cama_mesa_banho":        "bed_bath_table",
	"esporte_lazer":          "sports_leisure",
	"moveis_decoracao":       "furniture_decor",
	"informatica_acessorios": "computers_accessories",
	"utilidades_domesticas":  "housewares",
	"relogios_presentes":     "watches_gifts",
	"telefonia":              "telephony",
	"brinquedos":             "toys",
	"automotivo":             "auto",
	"perfumaria":             "perfumery",
	"bebes":                  "baby",
	"papelaria":              "stationery",
}

// untranslatedCategories exist in products but not in the translation file.
var untranslatedCategories = []string{
	"pc_gamer",
	"portateis_cozinha_e_preparadores_de_alimentos",
}

// Config controls the size and the purchase-date window of the output.
type Config struct {
	Orders int
	Seed   uint64
	Start  time.Time
	End    time.Time
}

// DefaultConfig generates a small demo dataset over 2017-2018, the real
// dataset's window.
func DefaultConfig() Config {
	return Config{
		Orders: 2000,
		Start:  time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Generator writes the nine CSV files.
type Generator struct {
	faker *Faker
	cfg   Config
}

func NewGenerator(cfg Config) *Generator {
	faker := NewFaker()
	if cfg.Seed != 0 {
		faker = NewFakerWithSeed(cfg.Seed)
	}
	if cfg.Orders <= 0 {
		cfg.Orders = DefaultConfig().Orders
	}
	if cfg.Start.IsZero() || cfg.End.IsZero() || !cfg.Start.Before(cfg.End) {
		d := DefaultConfig()
		cfg.Start, cfg.End = d.Start, d.End
	}
	return &Generator{faker: faker, cfg: cfg}
}

type product struct {
	id       string
	category string
	weight   float64 // grams; <0 means missing
}

type customer struct {
	id    string
	zip   string
	city  string
	state string
}

type order struct {
	id        string
	customer  customer
	purchased time.Time
	approved  time.Time
	carrier   time.Time
	delivered time.Time // zero when not delivered
	estimated time.Time
	status    string
}

// Write generates the dataset into dir, creating it if needed.
func (g *Generator) Write(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Map order would break seed reproducibility.
	categories := append(translatedCategories(), untranslatedCategories...)
	categories = append(categories, "") // a few products carry no category

	sellers := g.sellers(max(g.cfg.Orders/50, 3))
	products := g.products(max(g.cfg.Orders/4, 10), categories)
	orders := g.orders()

	if err := g.writeTranslations(dir); err != nil {
		return err
	}
	if err := g.writeSellers(dir, sellers); err != nil {
		return err
	}
	if err := g.writeProducts(dir, products); err != nil {
		return err
	}
	if err := g.writeCustomers(dir, orders); err != nil {
		return err
	}
	if err := g.writeGeolocations(dir, orders); err != nil {
		return err
	}
	if err := g.writeOrders(dir, orders); err != nil {
		return err
	}
	if err := g.writeItems(dir, orders, products, sellers); err != nil {
		return err
	}
	if err := g.writePayments(dir, orders); err != nil {
		return err
	}
	return g.writeReviews(dir, orders)
}

func (g *Generator) sellers(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = g.faker.HexID()
	}
	return ids
}

func (g *Generator) products(n int, categories []string) []product {
	products := make([]product, n)
	for i := range products {
		p := product{
			id:       g.faker.HexID(),
			category: Choose(g.faker, categories),
			weight:   float64(g.faker.Number(50, 30000)),
		}
		// Some products have no recorded weight.
		if g.faker.Bool(0.02) {
			p.weight = -1
		}
		products[i] = p
	}
	return products
}

func (g *Generator) orders() []order {
	orders := make([]order, g.cfg.Orders)
	for i := range orders {
		purchased := g.faker.DateBetween(g.cfg.Start, g.cfg.End)
		o := order{
			id: g.faker.HexID(),
			customer: customer{
				id:    g.faker.HexID(),
				zip:   g.faker.ZipPrefix(),
				city:  g.faker.City(),
				state: g.faker.State(),
			},
			purchased: purchased,
			approved:  purchased.Add(time.Duration(g.faker.Number(1, 48)) * time.Hour),
			estimated: purchased.AddDate(0, 0, g.faker.Number(10, 40)),
			status:    "delivered",
		}
		o.carrier = o.approved.Add(time.Duration(g.faker.Number(12, 96)) * time.Hour)

		// Most orders reach the customer; the rest stay in flight with no
		// delivery date, which the delivery queries must tolerate.
		if g.faker.Bool(0.9) {
			o.delivered = purchased.AddDate(0, 0, g.faker.Number(1, 45))
		} else {
			o.status = Choose(g.faker, []string{"shipped", "processing", "canceled"})
		}
		orders[i] = o
	}
	return orders
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timestampLayout)
}

func writeCSV(dir, file string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(dir, file))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (g *Generator) writeOrders(dir string, orders []order) error {
	header := []string{
		"order_id", "customer_id", "order_status", "order_purchase_timestamp",
		"order_approved_at", "order_delivered_carrier_date",
		"order_delivered_customer_date", "order_estimated_delivery_date",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.id, o.customer.id, o.status, formatTime(o.purchased),
			formatTime(o.approved), formatTime(o.carrier),
			formatTime(o.delivered), formatTime(o.estimated),
		})
	}
	return writeCSV(dir, dataset.OrdersFile, header, rows)
}

func (g *Generator) writeItems(dir string, orders []order, products []product, sellers []string) error {
	header := []string{
		"order_id", "order_item_id", "product_id", "seller_id",
		"shipping_limit_date", "price", "freight_value",
	}
	var rows [][]string
	for _, o := range orders {
		for item := 1; item <= g.faker.Number(1, 3); item++ {
			p := Choose(g.faker, products)
			rows = append(rows, []string{
				o.id,
				strconv.Itoa(item),
				p.id,
				Choose(g.faker, sellers),
				formatTime(o.purchased.AddDate(0, 0, 7)),
				fmt.Sprintf("%.2f", g.faker.Price(10, 450)),
				fmt.Sprintf("%.2f", g.faker.Price(5, 60)),
			})
		}
	}
	return writeCSV(dir, dataset.ItemsFile, header, rows)
}

func (g *Generator) writeProducts(dir string, products []product) error {
	header := []string{
		"product_id", "product_category_name", "product_name_lenght",
		"product_description_lenght", "product_photos_qty", "product_weight_g",
		"product_length_cm", "product_height_cm", "product_width_cm",
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		weight := ""
		if p.weight >= 0 {
			weight = strconv.Itoa(int(p.weight))
		}
		rows = append(rows, []string{
			p.id, p.category,
			strconv.Itoa(g.faker.Number(20, 60)),
			strconv.Itoa(g.faker.Number(100, 2000)),
			strconv.Itoa(g.faker.Number(1, 6)),
			weight,
			strconv.Itoa(g.faker.Number(10, 100)),
			strconv.Itoa(g.faker.Number(2, 60)),
			strconv.Itoa(g.faker.Number(10, 60)),
		})
	}
	return writeCSV(dir, dataset.ProductsFile, header, rows)
}

func (g *Generator) writeCustomers(dir string, orders []order) error {
	header := []string{
		"customer_id", "customer_unique_id", "customer_zip_code_prefix",
		"customer_city", "customer_state",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.customer.id, g.faker.HexID(), o.customer.zip,
			o.customer.city, o.customer.state,
		})
	}
	return writeCSV(dir, dataset.CustomersFile, header, rows)
}

func (g *Generator) writePayments(dir string, orders []order) error {
	header := []string{
		"order_id", "payment_sequential", "payment_type",
		"payment_installments", "payment_value",
	}
	var rows [][]string
	for _, o := range orders {
		value := g.faker.Price(20, 1500)
		rows = append(rows, []string{
			o.id, "1", g.faker.PaymentType(),
			strconv.Itoa(g.faker.Number(1, 10)),
			fmt.Sprintf("%.2f", value),
		})
		// Occasional split payment: a voucher covers part of the total.
		if g.faker.Bool(0.08) {
			rows = append(rows, []string{
				o.id, "2", "voucher", "1",
				fmt.Sprintf("%.2f", g.faker.Price(5, 100)),
			})
		}
	}
	return writeCSV(dir, dataset.PaymentsFile, header, rows)
}

func (g *Generator) writeReviews(dir string, orders []order) error {
	header := []string{
		"review_id", "order_id", "review_score", "review_comment_title",
		"review_comment_message", "review_creation_date",
		"review_answer_timestamp",
	}
	var rows [][]string
	for _, o := range orders {
		if !g.faker.Bool(0.8) {
			continue
		}
		created := o.purchased.AddDate(0, 0, g.faker.Number(2, 50))
		rows = append(rows, []string{
			g.faker.HexID(), o.id,
			strconv.Itoa(g.faker.Number(1, 5)),
			"", "",
			formatTime(created),
			formatTime(created.Add(time.Duration(g.faker.Number(1, 72)) * time.Hour)),
		})
	}
	return writeCSV(dir, dataset.ReviewsFile, header, rows)
}

func (g *Generator) writeSellers(dir string, sellers []string) error {
	header := []string{
		"seller_id", "seller_zip_code_prefix", "seller_city", "seller_state",
	}
	rows := make([][]string, 0, len(sellers))
	for _, id := range sellers {
		rows = append(rows, []string{
			id, g.faker.ZipPrefix(), g.faker.City(), g.faker.State(),
		})
	}
	return writeCSV(dir, dataset.SellersFile, header, rows)
}

func (g *Generator) writeGeolocations(dir string, orders []order) error {
	header := []string{
		"geolocation_zip_code_prefix", "geolocation_lat", "geolocation_lng",
		"geolocation_city", "geolocation_state",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.customer.zip,
			fmt.Sprintf("%.6f", g.faker.Float(-33.7, 5.3)),
			fmt.Sprintf("%.6f", g.faker.Float(-73.9, -34.8)),
			o.customer.city, o.customer.state,
		})
	}
	return writeCSV(dir, dataset.GeolocationFile, header, rows)
}

func (g *Generator) writeTranslations(dir string) error {
	header := []string{"product_category_name", "product_category_name_english"}
	names := translatedCategories()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, categoryTranslations[name]})
	}
	return writeCSV(dir, dataset.TranslationFile, header, rows)
}

func translatedCategories() []string {
	names := make([]string, 0, len(categoryTranslations))
	for name := range categoryTranslations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
