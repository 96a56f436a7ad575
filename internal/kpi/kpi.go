// Package kpi converts entries into monthly-equivalent figures and breakdowns.
package kpi

import (
	"math"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
)

// WeeksPerMonth converts a weekly amount to its monthly equivalent
const WeeksPerMonth = 4.333

// MonthlyFactor returns the multiplier turning one occurrence into a
// monthly-equivalent amount. One-off entries are not recurring load and count 0.
func MonthlyFactor(rec models.Recurrence) float64 {
	switch rec.Normalize() {
	case models.Weekly:
		return WeeksPerMonth
	case models.Monthly:
		return 1
	case models.Quarterly:
		return 1.0 / 3.0
	case models.Yearly:
		return 1.0 / 12.0
	default:
		return 0
	}
}

// Compute aggregates entries into a KPI bundle
func Compute(entries []models.Entry) models.KPI {
	var k models.KPI
	for _, e := range entries {
		amount := float64(e.Amount)
		if amount == 0 {
			continue
		}
		monthly := amount * MonthlyFactor(e.Recurrence)
		if e.Kind.IsIncome() {
			k.Income += monthly
			continue
		}
		switch e.Category.Normalize() {
		case models.CategoryFixed:
			k.Fixed += monthly
		case models.CategoryCredit:
			k.Credit += monthly
		default:
			k.Variable += monthly
		}
	}

	k.TotalExpense = k.Fixed + k.Variable + k.Credit
	k.FreeCash = k.Income - k.TotalExpense
	if k.Income > 0 {
		k.DebtPct = math.Max(0, 100*k.Credit/k.Income)
		k.SavePct = math.Max(0, 100*math.Max(k.Income-k.TotalExpense, 0)/k.Income)
	}
	return k
}

// ByCategory returns rounded monthly expenses: fixed, variable, credit
func ByCategory(k models.KPI) []models.BreakdownItem {
	return []models.BreakdownItem{
		{Key: string(models.CategoryFixed), Label: "Fixed", Amount: utils.Round2(k.Fixed)},
		{Key: string(models.CategoryVariable), Label: "Variable", Amount: utils.Round2(k.Variable)},
		{Key: string(models.CategoryCredit), Label: "Credit", Amount: utils.Round2(k.Credit)},
	}
}

var recurrenceOrder = []struct {
	rec   models.Recurrence
	label string
}{
	{models.Monthly, "Monthly"},
	{models.Weekly, "Weekly"},
	{models.OneOff, "One-off"},
	{models.Quarterly, "Quarterly"},
	{models.Yearly, "Yearly"},
}

// ByRecurrence sums every entry, income and expense alike, per recurrence
// bucket. Recurring entries use their monthly equivalent; one-off entries keep
// their raw amount so their impact stays visible.
func ByRecurrence(entries []models.Entry) []models.BreakdownItem {
	sums := make(map[models.Recurrence]float64, len(recurrenceOrder))
	for _, e := range entries {
		amount := float64(e.Amount)
		if amount == 0 {
			continue
		}
		rec := e.Recurrence.Normalize()
		if rec == models.OneOff {
			sums[rec] += amount
			continue
		}
		sums[rec] += amount * MonthlyFactor(rec)
	}

	out := make([]models.BreakdownItem, 0, len(recurrenceOrder))
	for _, r := range recurrenceOrder {
		out = append(out, models.BreakdownItem{Key: string(r.rec), Label: r.label, Amount: utils.Round2(sums[r.rec])})
	}
	return out
}
