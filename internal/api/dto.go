package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/hydration"
)

// Decimals are written with two places after the point, e.g. "2625.00"
const decimalPlaces = 2

type CreateUserRequest struct {
	Name   string          `json:"name"`
	Weight decimal.Decimal `json:"weight" swaggertype:"string" example:"75.00"`
}

type RecordIntakeRequest struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"500.00"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    string    `json:"weight" example:"75.00"`
	DailyGoal string    `json:"daily_goal" example:"2625.00"`
	CreatedAt time.Time `json:"created_at"`
}

type IntakeResponse struct {
	ID        int64     `json:"id"`
	DayID     string    `json:"day_id,omitempty"`
	Quantity  string    `json:"quantity" example:"500.00"`
	CreatedAt time.Time `json:"created_at"`
}

type DaySummaryResponse struct {
	ID            string           `json:"id"`
	Date          string           `json:"date" example:"2023-07-31"`
	Intakes       []IntakeResponse `json:"intakes"`
	Goal          string           `json:"goal" example:"2625.00"`
	AmountTaken   string           `json:"amount_taken" example:"500.00"`
	AmountLeft    string           `json:"amount_left" example:"2125.00"`
	PercentAmount string           `json:"percent_amount" example:"19.05"`
	ReachedGoal   bool             `json:"reached_goal"`
}

type GetUsersResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
	Users []UserResponse `json:"users"`
}

type GetHistoryResponse struct {
	UserID string               `json:"uid"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
	Total  int                  `json:"total"`
	Days   []DaySummaryResponse `json:"days"`
}

func newUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Weight:    u.Weight.StringFixed(decimalPlaces),
		DailyGoal: hydration.DailyGoal(u.Weight).StringFixed(decimalPlaces),
		CreatedAt: u.CreatedAt,
	}
}

func newIntakeResponse(in entity.Intake) IntakeResponse {
	return IntakeResponse{
		ID:        in.ID,
		Quantity:  in.Quantity.StringFixed(decimalPlaces),
		CreatedAt: in.CreatedAt,
	}
}

func newDaySummaryResponse(report *entity.DayReport) DaySummaryResponse {
	intakes := make([]IntakeResponse, 0, len(report.Intakes))
	for _, in := range report.Intakes {
		intakes = append(intakes, newIntakeResponse(in))
	}
	return DaySummaryResponse{
		ID:            report.Day.ID.String(),
		Date:          report.Day.Date.Format(hydration.DateLayout),
		Intakes:       intakes,
		Goal:          report.Day.Goal.StringFixed(decimalPlaces),
		AmountTaken:   report.Summary.AmountTaken.StringFixed(decimalPlaces),
		AmountLeft:    report.Summary.AmountLeft.StringFixed(decimalPlaces),
		PercentAmount: report.Summary.PercentAmount.StringFixed(decimalPlaces),
		ReachedGoal:   report.Summary.ReachedGoal,
	}
}
