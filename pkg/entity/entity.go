package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User owns tracked days. Weight is in kilograms.
type User struct {
	ID        uuid.UUID
	Name      string
	Weight    decimal.Decimal
	CreatedAt time.Time
}

// DayRecord is one user's tracked calendar day. Goal is the daily goal
// at the moment the record was created and is never recomputed.
type DayRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Goal      decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// Intake is a single recorded consumption in milliliters.
type Intake struct {
	ID        int64
	DayID     uuid.UUID
	Quantity  decimal.Decimal
	CreatedAt time.Time
}

// DaySummary is the progress of a day against its goal.
type DaySummary struct {
	AmountTaken   decimal.Decimal
	AmountLeft    decimal.Decimal
	PercentAmount decimal.Decimal
	ReachedGoal   bool
}

// DayReport is a day record together with its intakes and derived progress.
type DayReport struct {
	Day     DayRecord
	Intakes []Intake
	Summary DaySummary
}

// HistoryPage is a page of user's days in date order, Total counts all of them.
type HistoryPage struct {
	UserID uuid.UUID
	Total  int
	Days   []DayReport
}
