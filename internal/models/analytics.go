package models

import "time"

// Event is one dated, signed cash-flow delta produced by expanding an entry
type Event struct {
	Date  time.Time
	Delta float64
}

// BalancePoint represents the balance for a specific day
type BalancePoint struct {
	Date    string  `json:"date"` // Format: YYYY-MM-DD
	Balance float64 `json:"balance"`
}

// KPI holds monthly-equivalent aggregates derived from entries
type KPI struct {
	Income       float64 `json:"income"`
	Fixed        float64 `json:"fixed"`
	Variable     float64 `json:"variable"`
	Credit       float64 `json:"credit"`
	TotalExpense float64 `json:"total_expense"`
	DebtPct      float64 `json:"debt_pct"`  // credit / income * 100
	FreeCash     float64 `json:"free_cash"` // income - total expense, may be negative
	SavePct      float64 `json:"save_pct"`
}

// Level is the qualitative reading of a score
type Level string

const (
	LevelCritical Level = "critical"
	LevelStrained Level = "strained"
	LevelSound    Level = "sound"
	LevelSerene   Level = "serene"
)

// Ratios are the raw (unnormalized) ratios a score is built from
type Ratios struct {
	Savings float64 `json:"savings"`
	Fixed   float64 `json:"fixed"`
	Debt    float64 `json:"debt"`
}

// ScorePack is the scored reading of a KPI bundle. Ratios is nil for the
// empty-budget placeholder.
type ScorePack struct {
	Score   int     `json:"score"`
	Level   Level   `json:"level"`
	Color   string  `json:"color"`
	Message string  `json:"message"`
	Ratios  *Ratios `json:"ratios,omitempty"`
}

// BreakdownItem is one labelled monthly amount
type BreakdownItem struct {
	Key    string  `json:"key"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Breakdown groups expenses by category and entries by recurrence
type Breakdown struct {
	ByCategory   []BreakdownItem `json:"by_category"`
	ByRecurrence []BreakdownItem `json:"by_recurrence"`
}

// Milestones are balance snapshots at day 30, 180 and 365
type Milestones struct {
	Month1  float64 `json:"m1"`
	Month6  float64 `json:"m6"`
	Month12 float64 `json:"m12"`
}
