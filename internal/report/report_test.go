package report

import (
	"testing"
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *models.ProjectionResult {
	return &models.ProjectionResult{
		Meta:       models.Meta{Currency: "€", HorizonDays: 90},
		KPI:        models.KPI{Income: 3000, TotalExpense: 3200.5, FreeCash: -200.5},
		Score:      models.ScorePack{Score: 42, Level: models.LevelStrained, Message: "msg"},
		Milestones: models.Milestones{Month1: 1000, Month6: -12.3, Month12: -12.3},
		Curve:      []models.BalancePoint{{Date: "2025-01-15", Balance: 1000}},
		Tips:       []string{"tip"},
	}
}

func TestBuild(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 30, 45, 999, time.FixedZone("CET", 3600))

	r := Build(sampleResult(), at, "")

	assert.Equal(t, Meta{Currency: "€", GeneratedAt: "2025-01-15T09:30:45Z", HorizonDays: 90}, r.Meta)
	assert.Equal(t, DefaultDisclaimer, r.Disclaimer)
	assert.Equal(t, 42, r.Summary.Score)
	assert.Equal(t, models.LevelStrained, r.Summary.Level)
	assert.Equal(t, Formatted{
		Income:       "€3000.00",
		TotalExpense: "€3200.50",
		FreeCash:     "-€200.50",
		Month1:       "€1000.00",
		Month6:       "-€12.30",
		Month12:      "-€12.30",
	}, r.Formatted)
	assert.Equal(t, []string{"tip"}, r.Tips)
}

func TestBuild_DoesNotAliasResult(t *testing.T) {
	res := sampleResult()
	r := Build(res, time.Now(), "custom")

	r.Curve[0].Balance = 0
	r.Tips[0] = "changed"

	assert.Equal(t, "custom", r.Disclaimer)
	assert.Equal(t, 1000.0, res.Curve[0].Balance)
	assert.Equal(t, "tip", res.Tips[0])
}
