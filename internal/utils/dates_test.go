package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{name: "padded", in: "2025-03-07", want: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{name: "unpadded", in: "2025-3-7", want: time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", in: "2028-02-29", want: time.Date(2028, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "empty", in: "", want: fallback},
		{name: "garbage", in: "next tuesday", want: fallback},
		{name: "not a day", in: "2025-02-30", want: fallback},
		{name: "bad month", in: "2025-13-01", want: fallback},
		{name: "too many parts", in: "2025-01-01-01", want: fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(ParseDateOr(tt.in, fallback)))
		})
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	in := time.Date(2025, 6, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Day(in))
}
