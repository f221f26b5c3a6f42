package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig tunes the Postgres connection pool.
type PoolConfig struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

const createRecordsTablePG = `CREATE TABLE IF NOT EXISTS records (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// PostgresRepo implements Repo on a shared Postgres database, for learners
// who want their notebook on a server instead of a local file.
type PostgresRepo struct {
	pool *pgxpool.Pool
}

// OpenPostgres connects to dsn and ensures the records table exists.
func OpenPostgres(ctx context.Context, dsn string, cfg PoolConfig) (*PostgresRepo, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}
	if _, err := pool.Exec(ctx, createRecordsTablePG); err != nil {
		pool.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &PostgresRepo{pool: pool}, nil
}

// Close releases the pool.
func (r *PostgresRepo) Close() error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, key string) ([]byte, error) {
	t := entsql.Table(recordsTable)
	q, args := entsql.Dialect(dialect.Postgres).
		Select(t.C("value")).
		From(t).
		Where(entsql.EQ(t.C("key"), key)).
		Query()

	var value string
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get record %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *PostgresRepo) Put(ctx context.Context, key string, value []byte) error {
	q, args := upsertQuery(dialect.Postgres, key, value, time.Now().UTC())
	if _, err := r.pool.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("save record %s: %w", key, err)
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, key string) error {
	q, args := entsql.Dialect(dialect.Postgres).
		Delete(recordsTable).
		Where(entsql.EQ("key", key)).
		Query()
	if _, err := r.pool.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}
