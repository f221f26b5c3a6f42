package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const recordsTable = "records"

// recordRepo implements Repo on the SQLite records table.
type recordRepo struct {
	drv *entsql.Driver
}

func (r *recordRepo) Get(ctx context.Context, key string) ([]byte, error) {
	t := entsql.Table(recordsTable)
	q, args := entsql.Dialect(dialect.SQLite).
		Select(t.C("value")).
		From(t).
		Where(entsql.EQ(t.C("key"), key)).
		Limit(1).
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query record %s: %w", key, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query record %s: %w", key, err)
		}
		return nil, ErrNotFound
	}
	var value string
	if err := rows.Scan(&value); err != nil {
		return nil, fmt.Errorf("scan record %s: %w", key, err)
	}
	return []byte(value), nil
}

func (r *recordRepo) Put(ctx context.Context, key string, value []byte) error {
	q, args := upsertQuery(dialect.SQLite, key, value, time.Now().UTC())
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("save record %s: %w", key, err)
	}
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, key string) error {
	q, args := entsql.Dialect(dialect.SQLite).
		Delete(recordsTable).
		Where(entsql.EQ("key", key)).
		Query()
	if err := r.drv.Exec(ctx, q, args, nil); err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}

// upsertQuery builds an INSERT ... ON CONFLICT (key) DO UPDATE for the
// given dialect. SQLite and Postgres share the syntax.
func upsertQuery(d, key string, value []byte, now time.Time) (string, []any) {
	return entsql.Dialect(d).
		Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, string(value), now).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
}
