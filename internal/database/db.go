package database

import (
	"context"
	"database/sql"
)

// DB is the store handle the repositories work against. SQLDB exposes the
// stdlib bridge the migration runner needs; everything else goes through
// the pgx-native methods.
type DB interface {
	Ping(ctx context.Context) error
	Close() error

	Exec(ctx context.Context, query string, args ...any) (int64, error)
	Query(ctx context.Context, query string, args ...any) (Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) Row

	Begin(ctx context.Context) (Tx, error)

	SQLDB() *sql.DB
}

// Tx carries the guarded read-then-write sequences: the skill status
// transition and the assignment upsert. Both are single-row flows, so the
// surface is QueryRow only.
type Tx interface {
	QueryRow(ctx context.Context, query string, args ...any) Row

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type Rows interface {
	Close()
	Next() bool
	Scan(dest ...any) error
	Err() error
}

type Row interface {
	Scan(dest ...any) error
}
