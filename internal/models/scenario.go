package models

// Scenario holds what-if adjustments applied before any computation
type Scenario struct {
	VarMul      float64 `json:"var_mul"`
	ExtraIncome Amount  `json:"extra_income"`
	ExtraCredit Amount  `json:"extra_credit"`
}

// DefaultScenario is the identity scenario
func DefaultScenario() Scenario {
	return Scenario{VarMul: 1}
}

// Normalized returns a copy where an unset multiplier means 1.0
func (s Scenario) Normalized() Scenario {
	if s.VarMul == 0 {
		s.VarMul = 1
	}
	return s
}
