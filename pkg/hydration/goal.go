// Package hydration holds the arithmetic of daily water goals: the goal
// derived from body weight and the progress of a day against it.
package hydration

import (
	"time"

	"github.com/shopspring/decimal"
)

// MillilitersPerKilogram is the daily intake recommended per kilogram of body weight.
var MillilitersPerKilogram = decimal.NewFromInt(35)

// DailyGoal returns the daily goal in milliliters for weight in kilograms.
func DailyGoal(weight decimal.Decimal) decimal.Decimal {
	return weight.Mul(MillilitersPerKilogram)
}

// DateLayout is the wire format of calendar dates.
const DateLayout = time.DateOnly

// DateOf maps t to its calendar date in t's location, expressed as UTC midnight.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOf(t), nil
}
