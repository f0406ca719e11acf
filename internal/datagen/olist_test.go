package datagen

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"olist-dashboard/internal/dataset"
	"olist-dashboard/internal/services"
)

func testConfig(seed uint64) Config {
	return Config{
		Orders: 50,
		Seed:   seed,
		Start:  time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2018, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerator_WritesAllFiles(t *testing.T) {
	dir := t.TempDir()
	if err := NewGenerator(testConfig(42)).Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	for _, file := range dataset.Files {
		if _, err := os.Stat(filepath.Join(dir, file)); err != nil {
			t.Errorf("missing output file %s: %v", file, err)
		}
	}
}

func TestGenerator_OutputLoads(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := NewGenerator(testConfig(42)).Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tables, err := dataset.NewLoader(dir, slog.New(slog.DiscardHandler)).Load(context.Background())
	if err != nil {
		t.Fatalf("generated dataset does not load: %v", err)
	}

	if len(tables.Orders) != 50 {
		t.Errorf("orders = %d, want 50", len(tables.Orders))
	}
	if len(tables.Items) == 0 || len(tables.Payments) == 0 || len(tables.Customers) == 0 {
		t.Error("generated dataset has empty tables")
	}
	for _, o := range tables.Orders {
		if o.PurchaseTimestamp.Before(time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)) ||
			o.PurchaseTimestamp.After(time.Date(2018, 6, 2, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("purchase %v outside the configured window", o.PurchaseTimestamp)
		}
	}

	// Some product categories stay untranslated on purpose so the dashboard's
	// fallback path gets real input.
	for _, c := range untranslatedCategories {
		if _, ok := tables.CategoryTranslation[c]; ok {
			t.Errorf("category %q should not be in the translation file", c)
		}
	}
}

func TestGenerator_DashboardQueriesRun(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	if err := NewGenerator(testConfig(7)).Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	a := services.NewAnalytics()
	if err := a.Load(context.Background(), dir); err != nil {
		t.Fatalf("analytics load failed: %v", err)
	}

	min, max := a.DateRange()
	for _, page := range services.Pages {
		if _, err := a.Render(page, min, max, 0); err != nil {
			t.Errorf("Render(%q) failed: %v", page, err)
		}
	}
}

func TestGenerator_SeedReproducibility(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	if err := NewGenerator(testConfig(99)).Write(dirA); err != nil {
		t.Fatal(err)
	}
	if err := NewGenerator(testConfig(99)).Write(dirB); err != nil {
		t.Fatal(err)
	}

	for _, file := range dataset.Files {
		a, err := os.ReadFile(filepath.Join(dirA, file))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, file))
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("%s differs between runs with the same seed", file)
		}
	}
}

func TestFaker_HexID(t *testing.T) {
	f := NewFakerWithSeed(1)
	id := f.HexID()
	if len(id) != 32 {
		t.Errorf("id length = %d, want 32", len(id))
	}
	for _, r := range id {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("id %q contains a non-hex rune %q", id, r)
		}
	}
	if f.HexID() == id {
		t.Error("consecutive ids should differ")
	}
}
