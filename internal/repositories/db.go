package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// DB is the subset of pgxpool.Pool the repositories depend on, so they can
// run against a pool or a transaction alike.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// NewPool connects to Postgres using the given connection URL.
func NewPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	return pgxpool.Connect(ctx, dbURL)
}

const pgFKViolationCode = "23503"

// IsForeignKeyViolation reports whether err is a Postgres foreign-key
// constraint violation. Services pre-check references explicitly; this
// catches the race between check and insert.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolationCode
}
