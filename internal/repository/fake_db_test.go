package repository

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"hr-registry/internal/database"
)

// rowFunc resolves a single-row query against whatever state the test set
// up. Returning the row values as already-typed Go values keeps the fake
// close to what pgx hands back.
type rowFunc func(query string, args []any) database.Row

type fakeRow struct {
	vals []any
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(r.vals) != len(dest) {
		return fmt.Errorf("scan: %d values for %d targets", len(r.vals), len(dest))
	}
	for i, v := range r.vals {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}

type fakeTx struct {
	row rowFunc

	queries    []string
	committed  bool
	rolledBack bool
}

func (t *fakeTx) QueryRow(_ context.Context, query string, args ...any) database.Row {
	t.queries = append(t.queries, query)
	return t.row(query, args)
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type fakeDB struct {
	tx  *fakeTx
	row rowFunc
}

func (d *fakeDB) Ping(context.Context) error { return nil }
func (d *fakeDB) Close() error               { return nil }
func (d *fakeDB) SQLDB() *sql.DB             { return nil }

func (d *fakeDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, fmt.Errorf("unexpected Exec")
}

func (d *fakeDB) Query(context.Context, string, ...any) (database.Rows, error) {
	return nil, fmt.Errorf("unexpected Query")
}

func (d *fakeDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	if d.row == nil {
		return fakeRow{err: fmt.Errorf("unexpected QueryRow: %s", query)}
	}
	return d.row(query, args)
}

func (d *fakeDB) Begin(context.Context) (database.Tx, error) {
	if d.tx == nil {
		return nil, fmt.Errorf("unexpected Begin")
	}
	return d.tx, nil
}
