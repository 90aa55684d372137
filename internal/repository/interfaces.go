package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/hydration/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. Fills ID and CreatedAt of the given user
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Lists users ordered by creation. Requires pagination params provided
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
	Count(ctx context.Context) (int, error)
	// Deletes user together with his history
	Delete(ctx context.Context, uid uuid.UUID) error
}

type DaysRepositoryI interface {
	// Inserts the day unless user already has one for day.Date, then ErrDayExists is returned.
	// Fills ID and CreatedAt of the given day
	Create(ctx context.Context, day *entity.DayRecord) error
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayRecord, error)
	// Lists user's days ordered by date. Requires pagination params provided
	ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.DayRecord, error)
	CountByUser(ctx context.Context, uid uuid.UUID) (int, error)
}

type IntakesRepositoryI interface {
	// Creates new intake. Fills ID and CreatedAt of the given intake
	Create(ctx context.Context, intake *entity.Intake) error
	// Provides intakes of the day in order of recording
	ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.Intake, error)
	// Provides intakes of several days grouped by day id
	ListByDays(ctx context.Context, dayIDs []uuid.UUID) (map[uuid.UUID][]entity.Intake, error)
}

type TxManagerI interface {
	// Runs fn in a transaction. Repositories called with the ctx passed to fn join it
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

// Querier is implemented by both pools and transactions
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgConnection interface {
	Querier
	Ping(ctx context.Context) error
	Begin(ctx context.Context) (pgx.Tx, error)
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
