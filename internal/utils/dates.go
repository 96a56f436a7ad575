package utils

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Day returns the calendar date of t as midnight UTC
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDateOr parses a Y-M-D date (zero padding optional) and returns
// fallback when s is empty or not a real calendar date.
func ParseDateOr(s string, fallback time.Time) time.Time {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return fallback
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fallback
		}
		nums[i] = n
	}
	y, m, d := nums[0], nums[1], nums[2]
	if y < 1 || m < 1 || m > 12 || d < 1 {
		return fallback
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes Feb 30 into March
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return fallback
	}
	return t
}
