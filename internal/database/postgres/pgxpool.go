package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"hr-registry/internal/config"
	"hr-registry/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

var errNotConnected = errors.New("postgres: not connected")

// Store wraps a pgx pool and lazily exposes a database/sql view of the same
// pool for the migration runner.
type Store struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
}

func Connect(ctx context.Context, cfg config.DatabaseConfig) (database.DB, error) {
	pcfg, err := pgxpool.ParseConfig(buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("postgres: parse config: %w", err)
	}
	applyPoolSettings(pcfg, cfg)

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("postgres: open pool: %w", err)
	}

	pingCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	return &Store{pool: pool, sqlDB: stdlib.OpenDBFromPool(pool)}, nil
}

func buildDSN(cfg config.DatabaseConfig) string {
	parts := []string{
		"host=" + strings.TrimSpace(cfg.DBHost),
		"port=" + strings.TrimSpace(cfg.DBPort),
		"user=" + strings.TrimSpace(cfg.DBUser),
		"password=" + cfg.DBPassword,
		"dbname=" + strings.TrimSpace(cfg.DBName),
	}
	if mode := strings.TrimSpace(cfg.DBSSLMode); mode != "" {
		parts = append(parts, "sslmode="+mode)
	}
	return strings.Join(parts, " ")
}

func applyPoolSettings(pcfg *pgxpool.Config, cfg config.DatabaseConfig) {
	if cfg.ConnectTimeout > 0 {
		pcfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.PoolMaxConns > 0 {
		pcfg.MaxConns = cfg.PoolMaxConns
	}
	if cfg.PoolMinConns > 0 {
		pcfg.MinConns = cfg.PoolMinConns
	}
	if cfg.PoolMaxConnLifetime > 0 {
		pcfg.MaxConnLifetime = cfg.PoolMaxConnLifetime
	}
	if cfg.PoolMaxConnIdleTime > 0 {
		pcfg.MaxConnIdleTime = cfg.PoolMaxConnIdleTime
	}
	if cfg.PoolHealthCheckPeriod > 0 {
		pcfg.HealthCheckPeriod = cfg.PoolHealthCheckPeriod
	}
}

func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.pool == nil {
		return errNotConnected
	}
	return s.pool.Ping(ctx)
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	if s.sqlDB != nil {
		_ = s.sqlDB.Close()
	}
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if s == nil || s.pool == nil {
		return 0, errNotConnected
	}
	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *Store) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	if s == nil || s.pool == nil {
		return nil, errNotConnected
	}
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return poolRows{rows}, nil
}

func (s *Store) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	if s == nil || s.pool == nil {
		return errRow{errNotConnected}
	}
	return s.pool.QueryRow(ctx, query, args...)
}

func (s *Store) Begin(ctx context.Context) (database.Tx, error) {
	if s == nil || s.pool == nil {
		return nil, errNotConnected
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return poolTx{tx}, nil
}

func (s *Store) SQLDB() *sql.DB {
	if s == nil {
		return nil
	}
	return s.sqlDB
}

type poolTx struct {
	tx pgx.Tx
}

func (t poolTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return t.tx.QueryRow(ctx, query, args...)
}

func (t poolTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t poolTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

type poolRows struct {
	rows pgx.Rows
}

func (r poolRows) Close()                 { r.rows.Close() }
func (r poolRows) Next() bool             { return r.rows.Next() }
func (r poolRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r poolRows) Err() error             { return r.rows.Err() }

type errRow struct {
	err error
}

func (r errRow) Scan(_ ...any) error { return r.err }
