package services

import (
	"sort"

	"olist-dashboard/internal/models"
)

// Payment values at or above this are clamped out of the box statistics for
// display clarity, not data correction.
const paymentValueClamp = 1000.0

// Payments computes the payment-type distribution, the installment-count
// histogram and per-type value box statistics, all restricted to payments
// whose order survived the date filter. One order may carry several payment
// rows (split and voucher payments); they count individually.
func (a *Analytics) Payments(v *View) models.PaymentReport {
	a.mu.RLock()
	payments := a.tables.Payments
	a.mu.RUnlock()

	typeCounts := make(map[string]int)
	installments := make(map[int]int)
	valuesByType := make(map[string][]float64)

	for _, p := range payments {
		if !v.HasOrder(p.OrderID) {
			continue
		}
		typeCounts[p.Type]++
		installments[p.Installments]++
		if p.Value < paymentValueClamp {
			valuesByType[p.Type] = append(valuesByType[p.Type], p.Value)
		}
	}

	report := models.PaymentReport{
		TypeDistribution: make([]models.PaymentTypeCount, 0, len(typeCounts)),
		Installments:     make([]models.InstallmentCount, 0, len(installments)),
		ValuesByType:     make([]models.PaymentTypeValues, 0, len(valuesByType)),
	}

	for _, name := range sortedKeys(typeCounts) {
		report.TypeDistribution = append(report.TypeDistribution, models.PaymentTypeCount{
			Type:  name,
			Count: typeCounts[name],
		})
	}
	sort.SliceStable(report.TypeDistribution, func(i, j int) bool {
		return report.TypeDistribution[i].Count > report.TypeDistribution[j].Count
	})

	counts := make([]int, 0, len(installments))
	for n := range installments {
		counts = append(counts, n)
	}
	sort.Ints(counts)
	for _, n := range counts {
		report.Installments = append(report.Installments, models.InstallmentCount{
			Installments: n,
			Count:        installments[n],
		})
	}

	for _, name := range sortedKeys(valuesByType) {
		report.ValuesByType = append(report.ValuesByType, models.PaymentTypeValues{
			Type:   name,
			Values: boxStats(valuesByType[name]),
		})
	}

	return report
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
