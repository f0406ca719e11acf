// Package datagen generates a synthetic dataset with the exact schema of the
// nine Olist CSV files, so the dashboard can run without the real data drop.
package datagen

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// brazilStates are the state codes appearing in the real dataset.
var brazilStates = []string{
	"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "DF", "ES", "GO",
	"PE", "CE", "PA", "MT", "MA", "MS", "PB", "PI", "RN", "AL",
	"SE", "TO", "RO", "AM", "AC", "AP", "RR",
}

var paymentTypes = []string{"credit_card", "boleto", "voucher", "debit_card"}

// paymentTypeWeights roughly matches the real distribution; credit cards
// dominate.
var paymentTypeWeights = []float32{74, 19, 5, 2}

// Faker wraps gofakeit with dataset-specific generators.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{faker: gofakeit.New(uint64(time.Now().UnixNano()))}
}

// NewFakerWithSeed creates a Faker with a fixed seed for reproducible output.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{faker: gofakeit.New(seed)}
}

// HexID generates a 32-character lowercase hex identifier, the id shape used
// throughout the dataset.
func (f *Faker) HexID() string {
	return fmt.Sprintf("%016x%016x", f.faker.Uint64(), f.faker.Uint64())
}

// City generates a city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// State picks a Brazilian state code.
func (f *Faker) State() string {
	return f.faker.RandomString(brazilStates)
}

// ZipPrefix generates a five-digit zip code prefix.
func (f *Faker) ZipPrefix() string {
	return fmt.Sprintf("%05d", f.faker.Number(1000, 99990))
}

// PaymentType picks a payment type with realistic weights.
func (f *Faker) PaymentType() string {
	t, err := f.faker.Weighted(toAny(paymentTypes), paymentTypeWeights)
	if err != nil {
		return paymentTypes[0]
	}
	return t.(string)
}

// Price generates a price between min and max.
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// Number generates an integer in [min, max].
func (f *Faker) Number(min, max int) int {
	return f.faker.Number(min, max)
}

// Float generates a float in [min, max).
func (f *Faker) Float(min, max float64) float64 {
	return f.faker.Float64Range(min, max)
}

// Bool returns true with probability p.
func (f *Faker) Bool(p float64) bool {
	return f.faker.Float64Range(0, 1) < p
}

// DateBetween generates a timestamp in [start, end).
func (f *Faker) DateBetween(start, end time.Time) time.Time {
	return f.faker.DateRange(start, end)
}

// Choose picks one element.
func Choose[T any](f *Faker, items []T) T {
	return items[f.faker.Number(0, len(items)-1)]
}

func toAny(items []string) []any {
	out := make([]any, len(items))
	for i, s := range items {
		out[i] = s
	}
	return out
}
