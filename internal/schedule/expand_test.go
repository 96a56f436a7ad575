package schedule

import (
	"testing"
	"time"

	"github.com/Dan9191/serenity-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dates(events []models.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Date.Format("2006-01-02"))
	}
	return out
}

func TestExpand_Recurrences(t *testing.T) {
	anchor := date(2025, 1, 15)

	tests := []struct {
		name    string
		entry   models.Entry
		horizon int
		want    []string
	}{
		{
			name:    "weekly over 30 days",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 50, Recurrence: models.Weekly},
			horizon: 30,
			want:    []string{"2025-01-15", "2025-01-22", "2025-01-29", "2025-02-05", "2025-02-12"},
		},
		{
			name:    "monthly over 90 days",
			entry:   models.Entry{Kind: models.KindIncome, Amount: 3000, Recurrence: models.Monthly},
			horizon: 90,
			want:    []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"},
		},
		{
			name:    "monthly from the 31st clamps to the 28th",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 10, Recurrence: models.Monthly, StartDate: "2025-01-31"},
			horizon: 90,
			want:    []string{"2025-01-31", "2025-02-28", "2025-03-28"},
		},
		{
			name:    "quarterly",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 90, Recurrence: models.Quarterly, StartDate: "2025-08-31"},
			horizon: 365,
			want:    []string{"2025-08-31", "2025-11-28"},
		},
		{
			name:    "quarterly wraps the year",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 90, Recurrence: models.Quarterly},
			horizon: 365,
			want:    []string{"2025-01-15", "2025-04-15", "2025-07-15", "2025-10-15", "2026-01-15"},
		},
		{
			name:    "yearly",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 120, Recurrence: models.Yearly},
			horizon: 365,
			want:    []string{"2025-01-15", "2026-01-15"},
		},
		{
			name:    "one-off in the future",
			entry:   models.Entry{Kind: models.KindIncome, Amount: 500, Recurrence: models.OneOff, StartDate: "2025-02-01"},
			horizon: 30,
			want:    []string{"2025-02-01"},
		},
		{
			name:    "one-off beyond the horizon",
			entry:   models.Entry{Kind: models.KindIncome, Amount: 500, Recurrence: models.OneOff, StartDate: "2026-02-01"},
			horizon: 30,
			want:    []string{},
		},
		{
			name:    "unknown recurrence is monthly",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 5, Recurrence: "fortnightly"},
			horizon: 31,
			want:    []string{"2025-01-15", "2025-02-15"},
		},
		{
			name:    "zero amount",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 0, Recurrence: models.Weekly},
			horizon: 30,
			want:    []string{},
		},
		{
			name:    "start before anchor is clamped",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 5, Recurrence: models.OneOff, StartDate: "2024-06-01"},
			horizon: 30,
			want:    []string{"2025-01-15"},
		},
		{
			name:    "malformed start falls back to anchor",
			entry:   models.Entry{Kind: models.KindExpense, Amount: 5, Recurrence: models.Weekly, StartDate: "soon"},
			horizon: 7,
			want:    []string{"2025-01-15", "2025-01-22"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := Expand(tt.entry, anchor, anchor.AddDate(0, 0, tt.horizon))
			require.NoError(t, err)
			assert.Equal(t, tt.want, dates(events))
		})
	}
}

func TestExpand_YearlyLeapDay(t *testing.T) {
	anchor := date(2028, 2, 29)
	e := models.Entry{Kind: models.KindExpense, Amount: 1, Recurrence: models.Yearly}

	events, err := Expand(e, anchor, anchor.AddDate(0, 0, 800))
	require.NoError(t, err)
	assert.Equal(t, []string{"2028-02-29", "2029-02-28", "2030-02-28"}, dates(events))
}

func TestExpand_Sign(t *testing.T) {
	anchor := date(2025, 1, 15)

	income, err := Expand(models.Entry{Kind: models.KindIncome, Amount: 10, Recurrence: models.OneOff}, anchor, anchor)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, 10.0, income[0].Delta)

	expense, err := Expand(models.Entry{Kind: "whatever", Amount: 10, Recurrence: models.OneOff}, anchor, anchor)
	require.NoError(t, err)
	require.Len(t, expense, 1)
	assert.Equal(t, -10.0, expense[0].Delta)
}

func TestEvents_SortedAndStable(t *testing.T) {
	anchor := date(2025, 1, 15)
	entries := []models.Entry{
		{Kind: models.KindExpense, Amount: 100, Recurrence: models.Monthly, StartDate: "2025-01-20"},
		{Kind: models.KindIncome, Amount: 1000, Recurrence: models.Monthly},
		{Kind: models.KindExpense, Amount: 7, Recurrence: models.OneOff, StartDate: "2025-01-20"},
	}

	events, err := Events(entries, anchor, 30)
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-01-15", "2025-01-20", "2025-01-20"}, dates(events))
	assert.Equal(t, -100.0, events[1].Delta, "same-day events keep entry order")
	assert.Equal(t, -7.0, events[2].Delta)

	for i := 1; i < len(events); i++ {
		assert.False(t, events[i].Date.Before(events[i-1].Date))
	}
}

func TestEvents_Empty(t *testing.T) {
	events, err := Events(nil, date(2025, 1, 15), 90)
	require.NoError(t, err)
	assert.Empty(t, events)
}
