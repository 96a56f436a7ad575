package score

import (
	"testing"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuick_Empty(t *testing.T) {
	res, err := Quick(models.QuickInput{})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, models.LevelCritical, res.Level)
	assert.Equal(t, EmptyMessage, res.Message)
	assert.Equal(t, []string{EmptyTip}, res.Tips)
	assert.Equal(t, models.QuickRatios{}, res.Ratios)
}

func TestQuick_IncomeRequired(t *testing.T) {
	_, err := Quick(models.QuickInput{Fixed: 100})
	assert.ErrorIs(t, err, ErrIncomeRequired)
}

func TestQuick_SharesFormula(t *testing.T) {
	in := models.QuickInput{Income: 3000, Fixed: 1200, Variable: 300, Debt: 200, Savings: 600}

	res, err := Quick(in)
	require.NoError(t, err)

	assert.Equal(t, Composite(0.2, 0.4, 200.0/3000), res.Score)
	assert.Equal(t, 66, res.Score)
	assert.Equal(t, models.LevelStrained, res.Level)
	assert.Equal(t, 1300.0, res.Balance)
	assert.Equal(t, models.QuickRatios{Savings: 0.2, Fixed: 0.4, Debt: 0.0667, Free: 0.4333}, res.Ratios)
	assert.Equal(t, models.QuickRecap{
		Income: 3000, TotalExpense: 1700, Fixed: 1200, Variable: 300, Debt: 200, Savings: 600,
	}, res.Recap)
}

func TestQuick_StressedBudget(t *testing.T) {
	res, err := Quick(models.QuickInput{Income: 1000, Fixed: 900, Variable: 400, Debt: 300})
	require.NoError(t, err)

	assert.Equal(t, 0, res.Score)
	assert.Equal(t, models.LevelCritical, res.Level)
	assert.Equal(t, -600.0, res.Balance)
	assert.Equal(t, -0.6, res.Ratios.Free)
	assert.Len(t, res.Tips, 3)
}

func TestQuick_RatiosClamped(t *testing.T) {
	res, err := Quick(models.QuickInput{Income: 1, Fixed: 100, Savings: 50})
	require.NoError(t, err)

	assert.Equal(t, 5.0, res.Ratios.Fixed)
	assert.Equal(t, 5.0, res.Ratios.Savings)
	assert.Equal(t, -5.0, res.Ratios.Free)
}
