package models

// QuickInput holds five declared monthly figures
type QuickInput struct {
	Income   float64 `json:"income"`
	Fixed    float64 `json:"fixed"`
	Variable float64 `json:"variable"`
	Debt     float64 `json:"debt"`
	Savings  float64 `json:"savings"`
}

// IsZero reports whether every figure is zero
func (q QuickInput) IsZero() bool {
	return q.Income == 0 && q.Fixed == 0 && q.Variable == 0 && q.Debt == 0 && q.Savings == 0
}

// QuickRatios are rounded to 4 decimals
type QuickRatios struct {
	Savings float64 `json:"savings"`
	Fixed   float64 `json:"fixed"`
	Debt    float64 `json:"debt"`
	Free    float64 `json:"free"`
}

// QuickRecap echoes the figures together with the total expense
type QuickRecap struct {
	Income       float64 `json:"income"`
	TotalExpense float64 `json:"total_expense"`
	Fixed        float64 `json:"fixed"`
	Variable     float64 `json:"variable"`
	Debt         float64 `json:"debt"`
	Savings      float64 `json:"savings"`
}

// QuickResult is the score of five declared figures
type QuickResult struct {
	Score   int         `json:"score"`
	Level   Level       `json:"level"`
	Color   string      `json:"color"`
	Message string      `json:"message"`
	Balance float64     `json:"balance"`
	Ratios  QuickRatios `json:"ratios"`
	Recap   QuickRecap  `json:"recap"`
	Tips    []string    `json:"tips"`
}
