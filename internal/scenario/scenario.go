// Package scenario applies what-if adjustments to a list of entries.
package scenario

import (
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
)

// Apply returns a new entry list with the scenario applied. The input slice is
// never modified.
func Apply(entries []models.Entry, sc models.Scenario, anchor time.Time) []models.Entry {
	sc = sc.Normalized()

	out := make([]models.Entry, len(entries), len(entries)+2)
	copy(out, entries)

	if sc.VarMul != 1 {
		for i := range out {
			e := &out[i]
			if e.Kind.IsIncome() || e.Category.Normalize() != models.CategoryVariable || e.Amount == 0 {
				continue
			}
			e.Amount = models.Amount(utils.Round2(float64(e.Amount) * sc.VarMul))
		}
	}

	start := utils.Day(anchor).Format(utils.DateLayout)
	if sc.ExtraIncome > 0 {
		out = append(out, models.Entry{
			Kind:       models.KindIncome,
			Amount:     sc.ExtraIncome,
			Recurrence: models.Monthly,
			Category:   models.CategoryFixed,
			StartDate:  start,
		})
	}
	if sc.ExtraCredit > 0 {
		out = append(out, models.Entry{
			Kind:       models.KindExpense,
			Amount:     sc.ExtraCredit,
			Recurrence: models.Monthly,
			Category:   models.CategoryCredit,
			StartDate:  start,
		})
	}

	return out
}
