package models

// ProjectionRequest is the plain input of a projection
type ProjectionRequest struct {
	Base        float64   `json:"base"`
	Currency    string    `json:"currency"`
	HorizonDays int       `json:"horizon_days"`
	Entries     []Entry   `json:"entries"`
	Scenario    *Scenario `json:"scenario,omitempty"`
}

// Meta describes how a projection was computed
type Meta struct {
	Currency    string `json:"currency"`
	HorizonDays int    `json:"horizon_days"`
}

// Inputs echoes the caller's starting point
type Inputs struct {
	Base     float64  `json:"base"`
	Scenario Scenario `json:"scenario"`
}

// ProjectionResult is the full projection payload
type ProjectionResult struct {
	Meta       Meta           `json:"meta"`
	Inputs     Inputs         `json:"inputs"`
	KPI        KPI            `json:"kpi"`
	Score      ScorePack      `json:"score"`
	Milestones Milestones     `json:"milestones"`
	Curve      []BalancePoint `json:"curve"`
	Breakdown  Breakdown      `json:"breakdown"`
	Tips       []string       `json:"tips"`
}
