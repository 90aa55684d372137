package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

func TestWithinTx(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	txm := repository.NewTxManager(mock)
	intakes := repository.NewIntakesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO intakes (day_id, quantity) VALUES ($1, $2)`)
	dayID := uuid.New()
	quantity := decimal.NewFromInt(250)
	ctx := context.Background()

	t.Run("committed", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(query).WithArgs(dayID, quantity).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))
		mock.ExpectCommit()
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			return intakes.Create(ctx, &entity.Intake{DayID: dayID, Quantity: quantity})
		})
		assert.NoError(t, err)
	})
	t.Run("rolled back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(query).WithArgs(dayID, quantity).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			return intakes.Create(ctx, &entity.Intake{DayID: dayID, Quantity: quantity})
		})
		assert.EqualError(t, err, "creating intake error: db error")
	})
	t.Run("nested joins outer transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()
		calls := 0
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			return txm.WithinTx(ctx, func(ctx context.Context) error {
				calls++
				return nil
			})
		})
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})
	t.Run("begin error", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		err := txm.WithinTx(ctx, func(ctx context.Context) error {
			t.Fatal("must not be called")
			return nil
		})
		assert.EqualError(t, err, "beginning transaction error: db error")
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
