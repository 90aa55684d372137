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

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	weight := decimal.RequireFromString("75.00")
	query := regexp.QuoteMeta(`INSERT INTO users (name, weight) VALUES ($1, $2) RETURNING id, created_at;`)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	t.Run("successfully created", func(t *testing.T) {
		user := entity.User{Name: "test_user", Weight: weight}
		id := uuid.New()
		createdAt := time.Now()
		conn.ExpectQuery(query).WithArgs(user.Name, weight).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
	})
	t.Run("db error", func(t *testing.T) {
		user := entity.User{Name: "test_user", Weight: weight}
		conn.ExpectQuery(query).WithArgs(user.Name, weight).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.EqualError(t, err, "creating user db error: db error")
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	user := entity.User{
		ID:        uuid.New(),
		Name:      "test_user",
		Weight:    decimal.RequireFromString("80.50"),
		CreatedAt: time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT id, name, weight, created_at FROM users WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "weight", "created_at"}).
				AddRow(user.ID, user.Name, user.Weight, user.CreatedAt))
		result, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, result.ID)
		assert.Equal(t, user.Name, result.Name)
		assert.True(t, user.Weight.Equal(result.Weight))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "weight", "created_at"}))
		_, err := repo.FindByID(ctx, user.ID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.ID).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByID(ctx, user.ID)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListUsers(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	query := regexp.QuoteMeta(`SELECT id, name, weight, created_at FROM users ORDER BY created_at, id LIMIT $1 OFFSET $2;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "name", "weight", "created_at"})
		for i := 0; i < 3; i++ {
			rows.AddRow(uuid.New(), "user", decimal.NewFromInt(70), time.Now())
		}
		conn.ExpectQuery(query).WithArgs(10, 20).WillReturnRows(rows)
		users, err := repo.List(ctx, 10, 20)
		require.NoError(t, err)
		assert.Len(t, users, 3)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 0).
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "weight", "created_at"}))
		users, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, 10, 0)
		assert.EqualError(t, err, "listing users error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestCountUsers(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepoWithConn(conn)
	conn.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM users;`)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestDeleteUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepoWithConn(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`DELETE FROM users WHERE id = $1;`)
	testCases := []struct {
		Desc            string
		Error           error
		MockPrepareFunc func()
	}{
		{
			Desc:  "deleted",
			Error: nil,
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("deleting user error: db error"),
			MockPrepareFunc: func() {
				conn.ExpectExec(query).WithArgs(uid).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			err := repo.Delete(ctx, uid)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.NoError(t, conn.ExpectationsWereMet())
}
