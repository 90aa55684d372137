package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/pkg/entity"
)

type IntakesRepository struct {
	conn PgConnection
}

func NewIntakesRepoWithConn(conn PgConnection) *IntakesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for intakesRepo: " + err.Error())
	}
	return &IntakesRepository{
		conn: conn,
	}
}

func (ir *IntakesRepository) Create(ctx context.Context, intake *entity.Intake) error {
	if intake == nil {
		return errors.New("intake is nil")
	}
	row := querier(ctx, ir.conn).QueryRow(ctx,
		`INSERT INTO intakes (day_id, quantity) VALUES ($1, $2) RETURNING id, created_at;`,
		intake.DayID,
		intake.Quantity,
	)
	if err := row.Scan(&intake.ID, &intake.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrDayNotFound
			}
		}
		return errors.New("creating intake error: " + err.Error())
	}
	return nil
}

func (ir *IntakesRepository) ListByDay(ctx context.Context, dayID uuid.UUID) ([]entity.Intake, error) {
	byDay, err := ir.ListByDays(ctx, []uuid.UUID{dayID})
	if err != nil {
		return nil, err
	}
	if intakes, ok := byDay[dayID]; ok {
		return intakes, nil
	}
	return make([]entity.Intake, 0), nil
}

func (ir *IntakesRepository) ListByDays(ctx context.Context, dayIDs []uuid.UUID) (map[uuid.UUID][]entity.Intake, error) {
	result := make(map[uuid.UUID][]entity.Intake, len(dayIDs))
	if len(dayIDs) == 0 {
		return result, nil
	}
	rows, err := querier(ctx, ir.conn).Query(ctx,
		`SELECT id, day_id, quantity, created_at FROM intakes WHERE day_id = ANY($1) ORDER BY day_id, id;`,
		dayIDs,
	)
	if err != nil {
		return nil, errors.New("listing intakes error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		in := entity.Intake{}
		err = rows.Scan(&in.ID, &in.DayID, &in.Quantity, &in.CreatedAt)
		if err != nil {
			return nil, errors.New("intake row parsing error: " + err.Error())
		}
		result[in.DayID] = append(result[in.DayID], in)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected intake rows error: " + err.Error())
	}
	return result, nil
}
