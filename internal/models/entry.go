package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// Kind tells whether an entry brings money in or takes it out
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// IsIncome reports whether the entry is income. Anything else is an expense.
func (k Kind) IsIncome() bool {
	return strings.EqualFold(strings.TrimSpace(string(k)), string(KindIncome))
}

// Sign returns +1 for income and -1 for expenses
func (k Kind) Sign() float64 {
	if k.IsIncome() {
		return 1
	}
	return -1
}

// Recurrence is the repetition rule of an entry
type Recurrence string

const (
	OneOff    Recurrence = "oneoff"
	Weekly    Recurrence = "weekly"
	Monthly   Recurrence = "monthly"
	Quarterly Recurrence = "quarterly"
	Yearly    Recurrence = "yearly"
)

// Normalize maps spelling variants to a known rule. Unknown or empty values
// fall back to Monthly.
func (r Recurrence) Normalize() Recurrence {
	switch strings.ToLower(strings.TrimSpace(string(r))) {
	case "oneoff", "one-off", "once":
		return OneOff
	case "weekly":
		return Weekly
	case "quarterly":
		return Quarterly
	case "yearly":
		return Yearly
	default:
		return Monthly
	}
}

// Category classifies expenses. It is ignored for income.
type Category string

const (
	CategoryFixed    Category = "fixed"
	CategoryVariable Category = "variable"
	CategoryCredit   Category = "credit"
)

// Normalize returns the known category, defaulting to variable
func (c Category) Normalize() Category {
	switch strings.ToLower(strings.TrimSpace(string(c))) {
	case "fixed":
		return CategoryFixed
	case "credit":
		return CategoryCredit
	default:
		return CategoryVariable
	}
}

// Amount is a money magnitude that decodes leniently: a JSON number, a
// numeric string or null. Anything unparseable becomes 0.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler and never fails.
func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount(ParseAmountOr(data, 0))
	return nil
}

// ParseAmountOr parses raw JSON (number or quoted number) and returns fallback
// when it is missing, malformed or not finite.
func ParseAmountOr(raw []byte, fallback float64) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fallback
	}
	s := string(raw)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// Entry is one recurring or one-off cash-flow source
type Entry struct {
	Kind       Kind       `json:"kind"`
	Amount     Amount     `json:"amount"`
	Recurrence Recurrence `json:"recurrence"`
	Category   Category   `json:"category"`
	StartDate  string     `json:"start_date,omitempty"` // Format: YYYY-MM-DD
}
