// Package advice turns monthly figures into actionable suggestions.
package advice

import (
	"fmt"
	"math"

	"github.com/Dan9191/serenity-service/internal/models"
)

// Targets shared with the score formula
const (
	SavingsTarget = 0.20
	FixedCeiling  = 0.50
	DebtCeiling   = 0.20
)

// DefaultTip is returned when no target is missed
const DefaultTip = "Keep going: hold your course and build up your savings gradually."

// Figures are the monthly amounts the tips are computed from
type Figures struct {
	Income  float64
	Savings float64
	Fixed   float64
	Credit  float64
}

// FromKPI uses the derived savings (income minus expenses, floored at 0)
func FromKPI(k models.KPI) Figures {
	return Figures{
		Income:  k.Income,
		Savings: math.Max(k.Income-k.TotalExpense, 0),
		Fixed:   k.Fixed,
		Credit:  k.Credit,
	}
}

// Tips returns up to three suggestions, or DefaultTip when none applies
func Tips(f Figures, currency string) []string {
	var tips []string

	if need := SavingsTarget*f.Income - f.Savings; need > 0 {
		tips = append(tips, fmt.Sprintf("Increase your monthly savings by %s%.2f to reach 20%%.", currency, need))
	}
	if over := f.Fixed - FixedCeiling*f.Income; over > 0 {
		tips = append(tips, fmt.Sprintf("Cut fixed expenses by about %s%.2f to get back under 50%%.", currency, over))
	}
	if over := f.Credit - DebtCeiling*f.Income; over > 0 {
		tips = append(tips, fmt.Sprintf("Negotiate or pay off %s%.2f of monthly repayments to get back under 20%%.", currency, over))
	}

	if len(tips) == 0 {
		tips = append(tips, DefaultTip)
	}
	return tips
}
