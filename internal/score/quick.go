package score

import (
	"errors"
	"math"

	"github.com/Dan9191/serenity-service/internal/advice"
	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/Dan9191/serenity-service/internal/utils"
)

// ErrIncomeRequired is returned when expenses or savings are declared without income
var ErrIncomeRequired = errors.New("income must be greater than 0 when expenses or savings are declared")

// EmptyTip is the only tip of an empty budget
const EmptyTip = "Fill in your budget to get a score."

// QuickCurrency is the symbol used in quick score tips
const QuickCurrency = "$"

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Quick scores five declared monthly figures
func Quick(in models.QuickInput) (models.QuickResult, error) {
	if in.IsZero() {
		return models.QuickResult{
			Score:   0,
			Level:   models.LevelCritical,
			Color:   Color(models.LevelCritical),
			Message: EmptyMessage,
			Tips:    []string{EmptyTip},
		}, nil
	}
	if in.Income <= 0 {
		return models.QuickResult{}, ErrIncomeRequired
	}

	total := in.Fixed + in.Variable + in.Debt
	balance := in.Income - total

	savings := clamp(in.Savings/in.Income, 0, 5)
	fixed := clamp(in.Fixed/in.Income, 0, 5)
	debt := clamp(in.Debt/in.Income, 0, 5)
	free := clamp(balance/in.Income, -5, 5)

	s := Composite(savings, fixed, debt)
	level := LevelFor(s)

	return models.QuickResult{
		Score:   s,
		Level:   level,
		Color:   Color(level),
		Message: Message(level),
		Balance: utils.Round2(balance),
		Ratios: models.QuickRatios{
			Savings: utils.Round(savings, 4),
			Fixed:   utils.Round(fixed, 4),
			Debt:    utils.Round(debt, 4),
			Free:    utils.Round(free, 4),
		},
		Recap: models.QuickRecap{
			Income:       in.Income,
			TotalExpense: utils.Round2(total),
			Fixed:        in.Fixed,
			Variable:     in.Variable,
			Debt:         in.Debt,
			Savings:      in.Savings,
		},
		Tips: advice.Tips(advice.Figures{
			Income:  in.Income,
			Savings: in.Savings,
			Fixed:   in.Fixed,
			Credit:  in.Debt,
		}, QuickCurrency),
	}, nil
}
