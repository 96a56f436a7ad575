// Package report assembles the payload consumed by the document renderer: the
// projection plus a generation timestamp, a disclaimer and pre-formatted money.
package report

import (
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
)

// DefaultDisclaimer is used when none is configured
const DefaultDisclaimer = "This document is provided for information only."

type Meta struct {
	Currency    string `json:"currency"`
	GeneratedAt string `json:"generated_at"`
	HorizonDays int    `json:"horizon_days"`
}

// Formatted holds money already rendered with the currency symbol
type Formatted struct {
	Income       string `json:"income"`
	TotalExpense string `json:"total_expense"`
	FreeCash     string `json:"free_cash"`
	Month1       string `json:"m1"`
	Month6       string `json:"m6"`
	Month12      string `json:"m12"`
}

type Summary struct {
	Score   int          `json:"score"`
	Level   models.Level `json:"level"`
	Message string       `json:"message"`
	KPI     models.KPI   `json:"kpi"`
}

// Report is a superset of the projection result
type Report struct {
	Meta       Meta                  `json:"meta"`
	Summary    Summary               `json:"summary"`
	Milestones models.Milestones     `json:"milestones"`
	Formatted  Formatted             `json:"formatted"`
	Curve      []models.BalancePoint `json:"curve"`
	Breakdown  models.Breakdown      `json:"breakdown"`
	Tips       []string              `json:"tips"`
	Disclaimer string                `json:"disclaimer"`
}

// Build wraps a projection result. generatedAt is rendered in UTC to the second.
func Build(res *models.ProjectionResult, generatedAt time.Time, disclaimer string) Report {
	if disclaimer == "" {
		disclaimer = DefaultDisclaimer
	}
	cur := res.Meta.Currency

	curve := make([]models.BalancePoint, len(res.Curve))
	copy(curve, res.Curve)
	tips := make([]string, len(res.Tips))
	copy(tips, res.Tips)

	return Report{
		Meta: Meta{
			Currency:    cur,
			GeneratedAt: generatedAt.UTC().Truncate(time.Second).Format(time.RFC3339),
			HorizonDays: res.Meta.HorizonDays,
		},
		Summary: Summary{
			Score:   res.Score.Score,
			Level:   res.Score.Level,
			Message: res.Score.Message,
			KPI:     res.KPI,
		},
		Milestones: res.Milestones,
		Formatted: Formatted{
			Income:       utils.FormatMoney(res.KPI.Income, cur),
			TotalExpense: utils.FormatMoney(res.KPI.TotalExpense, cur),
			FreeCash:     utils.FormatMoney(res.KPI.FreeCash, cur),
			Month1:       utils.FormatMoney(res.Milestones.Month1, cur),
			Month6:       utils.FormatMoney(res.Milestones.Month6, cur),
			Month12:      utils.FormatMoney(res.Milestones.Month12, cur),
		},
		Curve:      curve,
		Breakdown:  res.Breakdown,
		Tips:       tips,
		Disclaimer: disclaimer,
	}
}
