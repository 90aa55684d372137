package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"

	"github.com/limbo/hydration/pkg/cleanup"
)

// NewPool connects to postgres and registers closing of the pool as a cleanup job.
// Exits the process if database is unreachable.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		slog.Error("creating pgxpool error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	err = pool.Ping(context.Background())
	if err != nil {
		slog.Error("error while pinging pgxpool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func(context.Context) error {
			pool.Close()
			return nil
		},
	})
	return pool
}

// Migrate applies goose migrations from dir using the pool's connection settings
func Migrate(pool *pgxpool.Pool, dir string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	return migrateDB(db, dir)
}

func migrateDB(db *sql.DB, dir string) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.New("setting migrations dialect error: " + err.Error())
	}
	if err := goose.Up(db, dir); err != nil {
		return errors.New("applying migrations error: " + err.Error())
	}
	return nil
}

type txKey struct{}

// querier picks the transaction stored in ctx by TxManager, falling back to conn
func querier(ctx context.Context, conn Querier) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return conn
}
