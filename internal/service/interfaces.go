package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type CreateUserRequest struct {
	Name string `validate:"required,notblank,max=128"`
	// Kilograms, at most 5 digits with 2 of them after the point
	Weight decimal.Decimal `validate:"decimal_gt=0,decimal_lt=1000,decimal_scale=2"`
}

type RecordIntakeRequest struct {
	// Milliliters, at most 6 digits with 2 of them after the point
	Quantity decimal.Decimal `validate:"decimal_gt=0,decimal_lt=10000,decimal_scale=2"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates request, creates new row in database. Returns user's data with ID
	CreateUser(ctx context.Context, req *CreateUserRequest) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Returns page of users and total count of them
	ListUsers(ctx context.Context, pagination PaginationOpts) ([]*entity.User, int, error)
	// Deletes user with all his history
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type IntakeServiceI interface {
	// Records intake into user's today, creating the day when it is the first intake of it
	RecordIntake(ctx context.Context, uid uuid.UUID, req *RecordIntakeRequest) (*entity.Intake, error)
	// Reports progress of the given date. Zero date means today. Never creates a day
	GetSummary(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayReport, error)
	// Reports user's days in date order
	GetHistory(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) (*entity.HistoryPage, error)
}
