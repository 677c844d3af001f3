package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is the statement surface shared by the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type txKey struct{}

// withTx runs fn in a transaction carried by the returned context. Nested
// calls join the outer transaction.
func withTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// db sends statements to the transaction in ctx, or to the pool.
type db struct {
	pool *pgxpool.Pool
}

func (d db) on(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return d.pool
}

func (d db) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return d.on(ctx).Exec(ctx, sql, args...)
}

func (d db) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return d.on(ctx).QueryRow(ctx, sql, args...)
}

func (d db) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return d.on(ctx).Query(ctx, sql, args...)
}

// SQLSTATE codes the repositories translate into domain errors.
const (
	sqlstateInvalidText = "22P02"
	sqlstateForeignKey  = "23503"
	sqlstateCheck       = "23514"
)

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isInvalidUUID(err error) bool         { return hasCode(err, sqlstateInvalidText) }
func isForeignKeyViolation(err error) bool { return hasCode(err, sqlstateForeignKey) }
func isCheckViolation(err error) bool      { return hasCode(err, sqlstateCheck) }
