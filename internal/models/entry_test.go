package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Amount
	}{
		{"number", `12.5`, 12.5},
		{"numeric string", `"  1200 "`, 1200},
		{"null", `null`, 0},
		{"garbage string", `"abc"`, 0},
		{"bool", `true`, 0},
		{"object", `{"v": 1}`, 0},
		{"overflow", `1e400`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Entry
			require.NoError(t, json.Unmarshal([]byte(`{"amount": `+tt.raw+`}`), &e))
			assert.Equal(t, tt.want, e.Amount)
		})
	}
}

func TestRecurrence_Normalize(t *testing.T) {
	tests := map[Recurrence]Recurrence{
		"once":      OneOff,
		"One-Off":   OneOff,
		"oneoff":    OneOff,
		"WEEKLY":    Weekly,
		"quarterly": Quarterly,
		" yearly ":  Yearly,
		"monthly":   Monthly,
		"":          Monthly,
		"biweekly":  Monthly,
	}
	for in, want := range tests {
		assert.Equal(t, want, in.Normalize(), "recurrence %q", in)
	}
}

func TestCategory_Normalize(t *testing.T) {
	assert.Equal(t, CategoryFixed, Category("Fixed").Normalize())
	assert.Equal(t, CategoryCredit, Category("credit").Normalize())
	assert.Equal(t, CategoryVariable, Category("").Normalize())
	assert.Equal(t, CategoryVariable, Category("leisure").Normalize())
}

func TestKind_Sign(t *testing.T) {
	assert.Equal(t, 1.0, Kind("Income").Sign())
	assert.Equal(t, -1.0, KindExpense.Sign())
	assert.Equal(t, -1.0, Kind("refund").Sign())
}

func TestScenario_Normalized(t *testing.T) {
	assert.Equal(t, DefaultScenario(), Scenario{}.Normalized())
	assert.Equal(t, 0.5, Scenario{VarMul: 0.5}.Normalized().VarMul)
}
