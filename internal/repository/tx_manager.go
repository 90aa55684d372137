package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

type TxManager struct {
	conn PgConnection
}

func NewTxManager(conn PgConnection) *TxManager {
	return &TxManager{
		conn: conn,
	}
}

func (tm *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// Already inside a transaction, join it
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	tx, err := tm.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning transaction error: " + err.Error())
	}
	err = fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, errors.New("rollback error: "+rbErr.Error()))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing transaction error: " + err.Error())
	}
	return nil
}
