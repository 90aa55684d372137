package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

func TestCreateIntake(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewIntakesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO intakes (day_id, quantity) VALUES ($1, $2) RETURNING id, created_at;`)
	dayID := uuid.New()
	quantity := decimal.RequireFromString("500.00")
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "successful",
			Error: nil,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(dayID, quantity).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(42), time.Now()))
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrDayNotFound,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(dayID, quantity).WillReturnError(&pgconn.PgError{
					Code: "23503",
				})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating intake error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(dayID, quantity).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			intake := entity.Intake{DayID: dayID, Quantity: quantity}
			err := repo.Create(ctx, &intake)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(42), intake.ID)
			}
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListIntakes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewIntakesRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT id, day_id, quantity, created_at FROM intakes WHERE day_id = ANY($1) ORDER BY day_id, id;`)
	columns := []string{"id", "day_id", "quantity", "created_at"}
	first, second := uuid.New(), uuid.New()
	ctx := context.Background()

	t.Run("grouped by day", func(t *testing.T) {
		ids := []uuid.UUID{first, second}
		mock.ExpectQuery(query).WithArgs(ids).WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), first, decimal.NewFromInt(200), time.Now()).
			AddRow(int64(2), first, decimal.NewFromInt(300), time.Now()).
			AddRow(int64(3), second, decimal.NewFromInt(1000), time.Now()))
		byDay, err := repo.ListByDays(ctx, ids)
		require.NoError(t, err)
		assert.Len(t, byDay[first], 2)
		assert.Len(t, byDay[second], 1)
		assert.Equal(t, int64(1), byDay[first][0].ID)
	})
	t.Run("no days, no query", func(t *testing.T) {
		byDay, err := repo.ListByDays(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, byDay)
	})
	t.Run("single day without intakes", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs([]uuid.UUID{first}).WillReturnRows(pgxmock.NewRows(columns))
		intakes, err := repo.ListByDay(ctx, first)
		require.NoError(t, err)
		assert.NotNil(t, intakes)
		assert.Empty(t, intakes)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs([]uuid.UUID{first}).WillReturnError(errors.New("db error"))
		_, err := repo.ListByDay(ctx, first)
		assert.EqualError(t, err, "listing intakes error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
