// Package forecast simulates a daily running balance from a sorted event stream.
package forecast

import (
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
)

const (
	MinHorizonDays = 30
	MaxHorizonDays = 365
)

// Milestone day offsets
const (
	DayMonth1  = 30
	DayMonth6  = 180
	DayMonth12 = 365
)

// ClampHorizon bounds a requested horizon to [MinHorizonDays, MaxHorizonDays]
func ClampHorizon(days int) int {
	if days < MinHorizonDays {
		return MinHorizonDays
	}
	if days > MaxHorizonDays {
		return MaxHorizonDays
	}
	return days
}

// Simulate walks day 0 (anchor) through day horizonDays and records the
// balance after applying that day's events. Events must be sorted by date.
// Only recorded balances are rounded, never the running sum.
func Simulate(base float64, events []models.Event, anchor time.Time, horizonDays int) []models.BalancePoint {
	anchor = utils.Day(anchor)
	curve := make([]models.BalancePoint, 0, horizonDays+1)
	balance := base
	i := 0
	for d := 0; d <= horizonDays; d++ {
		day := anchor.AddDate(0, 0, d)
		for i < len(events) && !events[i].Date.After(day) {
			balance += events[i].Delta
			i++
		}
		curve = append(curve, models.BalancePoint{
			Date:    day.Format(utils.DateLayout),
			Balance: utils.Round2(balance),
		})
	}
	return curve
}

// MilestonesOf reads the balance at days 30, 180 and 365, using the last point
// when the curve is shorter.
func MilestonesOf(curve []models.BalancePoint) models.Milestones {
	if len(curve) == 0 {
		return models.Milestones{}
	}
	at := func(day int) float64 {
		if day > len(curve)-1 {
			day = len(curve) - 1
		}
		return utils.Round2(curve[day].Balance)
	}
	return models.Milestones{
		Month1:  at(DayMonth1),
		Month6:  at(DayMonth6),
		Month12: at(DayMonth12),
	}
}
