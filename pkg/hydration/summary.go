package hydration

import (
	"github.com/limbo/hydration/pkg/entity"
	"github.com/shopspring/decimal"
)

const percentPlaces = 2

var hundred = decimal.NewFromInt(100)

// Summarize derives the progress of day from its intakes. Percent is rounded
// half to even and is not capped at 100. A non-positive goal counts as met.
func Summarize(day entity.DayRecord, intakes []entity.Intake) entity.DaySummary {
	taken := decimal.Zero
	for _, in := range intakes {
		taken = taken.Add(in.Quantity)
	}
	left := day.Goal.Sub(taken)
	if left.IsNegative() {
		left = decimal.Zero
	}
	var percent decimal.Decimal
	if day.Goal.IsPositive() {
		percent = taken.Mul(hundred).Div(day.Goal).RoundBank(percentPlaces)
	} else {
		percent = hundred
	}
	return entity.DaySummary{
		AmountTaken:   taken,
		AmountLeft:    left,
		PercentAmount: percent,
		ReachedGoal:   left.IsZero(),
	}
}

// Report bundles day with its intakes and summary.
func Report(day entity.DayRecord, intakes []entity.Intake) entity.DayReport {
	if intakes == nil {
		intakes = make([]entity.Intake, 0)
	}
	return entity.DayReport{
		Day:     day,
		Intakes: intakes,
		Summary: Summarize(day, intakes),
	}
}
