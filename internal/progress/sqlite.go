// apps/go-server/internal/progress/sqlite.go
//
// SQLite-backed implementation of the progress Store interface.
// One table, progress(key TEXT PRIMARY KEY, value TEXT NOT NULL);
// the schema is created by the server's startup migration (db.go).
// Bulk deletes run in a single transaction so a clear is all-or-nothing
// as far as this store can promise.

package progress

import (
	"context"
	"database/sql"
	"errors"
)

type sqliteStore struct{ db *sql.DB }

// NewSQLiteStore wraps an opened database handle. The caller owns the
// handle's lifecycle.
func NewSQLiteStore(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM progress WHERE key=?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StoreError{Op: "get " + key, Err: err}
	}
	return v, true, nil
}

func (s *sqliteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO progress(key, value) VALUES(?,?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`, key, value)
	if err != nil {
		return &StoreError{Op: "set " + key, Err: err}
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StoreError{Op: "delete begin", Err: err}
	}
	defer func() { _ = tx.Rollback() }()
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM progress WHERE key=?`, k); err != nil {
			return &StoreError{Op: "delete " + k, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &StoreError{Op: "delete commit", Err: err}
	}
	return nil
}

func (s *sqliteStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM progress`)
	if err != nil {
		return nil, &StoreError{Op: "keys", Err: err}
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &StoreError{Op: "keys scan", Err: err}
		}
		out = append(out, k)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "keys", Err: err}
	}
	return out, nil
}
