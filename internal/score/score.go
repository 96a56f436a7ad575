// Package score holds the serenity score formula.
//
// Composite is the one definition of the formula. Both the projection
// scorer and the quick five-figure scorer call it, and any client preview must
// reproduce it exactly:
//
//	comp_savings = min(savings/0.20, 1)
//	comp_fixed   = 1 - min(fixed/0.50, 1)
//	comp_debt    = 1 - min(debt/0.20, 1)
//	score        = round(100 * (0.4*comp_savings + 0.3*comp_fixed + 0.3*comp_debt))
//
// clamped to [0, 100]. Halves round to even.
package score

import (
	"math"

	"github.com/Dan9191/serenity-service/internal/advice"
	"github.com/Dan9191/serenity-service/internal/models"
)

const (
	WeightSavings = 0.4
	WeightFixed   = 0.3
	WeightDebt    = 0.3
)

// Level thresholds, inclusive lower bounds
const (
	StrainedFrom = 40
	SoundFrom    = 70
	SereneFrom   = 85
)

// EmptyMessage replaces the level message when there is nothing to score
const EmptyMessage = "Start by entering your income and expenses."

var messages = map[models.Level]string{
	models.LevelSerene:   "Serene budget: your money is working for you.",
	models.LevelSound:    "Healthy base: build up your savings to reach green.",
	models.LevelStrained: "Budget under strain: a few simple adjustments can help.",
	models.LevelCritical: "Fragile situation: time to take back control.",
}

var colors = map[models.Level]string{
	models.LevelSerene:   "green",
	models.LevelSound:    "yellow",
	models.LevelStrained: "orange",
	models.LevelCritical: "red",
}

// Composite maps the three ratios to a score in [0, 100]
func Composite(savingsRatio, fixedRatio, debtRatio float64) int {
	compSavings := math.Min(savingsRatio/advice.SavingsTarget, 1)
	compFixed := 1 - math.Min(fixedRatio/advice.FixedCeiling, 1)
	compDebt := 1 - math.Min(debtRatio/advice.DebtCeiling, 1)

	s := int(math.RoundToEven(100 * (WeightSavings*compSavings + WeightFixed*compFixed + WeightDebt*compDebt)))
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// LevelFor reads a score
func LevelFor(score int) models.Level {
	switch {
	case score >= SereneFrom:
		return models.LevelSerene
	case score >= SoundFrom:
		return models.LevelSound
	case score >= StrainedFrom:
		return models.LevelStrained
	default:
		return models.LevelCritical
	}
}

// Message returns the fixed advisory message of a level
func Message(l models.Level) string {
	return messages[l]
}

// Color returns the display color of a level
func Color(l models.Level) string {
	return colors[l]
}

// RatiosOf derives the raw ratios from a KPI bundle; all are 0 without income
func RatiosOf(k models.KPI) models.Ratios {
	if k.Income <= 0 {
		return models.Ratios{}
	}
	return models.Ratios{
		Savings: math.Max(k.Income-k.TotalExpense, 0) / k.Income,
		Fixed:   k.Fixed / k.Income,
		Debt:    k.Credit / k.Income,
	}
}

// Empty is the placeholder pack for a budget with no income and no expenses
func Empty() models.ScorePack {
	return models.ScorePack{
		Score:   0,
		Level:   models.LevelCritical,
		Color:   Color(models.LevelCritical),
		Message: EmptyMessage,
	}
}

// FromKPI scores a KPI bundle
func FromKPI(k models.KPI) models.ScorePack {
	if k.Income == 0 && k.TotalExpense == 0 {
		return Empty()
	}

	r := RatiosOf(k)
	s := Composite(r.Savings, r.Fixed, r.Debt)
	level := LevelFor(s)
	return models.ScorePack{
		Score:   s,
		Level:   level,
		Color:   Color(level),
		Message: Message(level),
		Ratios:  &r,
	}
}
