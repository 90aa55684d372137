package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

type DaysRepository struct {
	conn PgConnection
}

func NewDaysRepoWithConn(conn PgConnection) *DaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for daysRepo: " + err.Error())
	}
	return &DaysRepository{
		conn: conn,
	}
}

func (dr *DaysRepository) Create(ctx context.Context, day *entity.DayRecord) error {
	if day == nil {
		return errors.New("day is nil")
	}
	row := querier(ctx, dr.conn).QueryRow(ctx,
		`INSERT INTO day_records (user_id, goal, date) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, date) DO NOTHING RETURNING id, created_at;`,
		day.UserID,
		day.Goal,
		day.Date,
	)
	if err := row.Scan(&day.ID, &day.CreatedAt); err != nil {
		// Nothing returned means the row is already there
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrDayExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrDayExists
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating day db error: " + err.Error())
	}
	return nil
}

func (dr *DaysRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DayRecord, error) {
	day := entity.DayRecord{UserID: uid}
	row := querier(ctx, dr.conn).QueryRow(ctx,
		`SELECT id, goal, date, created_at FROM day_records WHERE user_id = $1 AND date = $2;`,
		uid,
		date,
	)
	if err := row.Scan(&day.ID, &day.Goal, &day.Date, &day.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDayNotFound
		}
		return nil, errors.New("getting day by date error: " + err.Error())
	}
	return &day, nil
}

func (dr *DaysRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit, offset int) ([]entity.DayRecord, error) {
	rows, err := querier(ctx, dr.conn).Query(ctx,
		`SELECT id, user_id, goal, date, created_at FROM day_records
		WHERE user_id = $1 ORDER BY date, id LIMIT $2 OFFSET $3;`,
		uid,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("listing days error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DayRecord, 0, limit)
	for rows.Next() {
		day := entity.DayRecord{}
		err = rows.Scan(&day.ID, &day.UserID, &day.Goal, &day.Date, &day.CreatedAt)
		if err != nil {
			return nil, errors.New("day row parsing error: " + err.Error())
		}
		result = append(result, day)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected day rows error: " + err.Error())
	}
	return result, nil
}

func (dr *DaysRepository) CountByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	var count int
	row := querier(ctx, dr.conn).QueryRow(ctx, `SELECT COUNT(*) FROM day_records WHERE user_id = $1;`, uid)
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting days: " + err.Error())
	}
	return count, nil
}
