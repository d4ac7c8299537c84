package storage

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// DBAdapter defines the interface for database operations needed by the store.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) error
}

// DBRows defines the interface for query result rows.
type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
}

/***** pgx *****/

type pgxAdapter struct {
	pool *pgxpool.Pool
}

func (a *pgxAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := a.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}

	return &pgxRows{rows: rows}, nil
}

func (a *pgxAdapter) Exec(ctx context.Context, query string) error {
	_, err := a.pool.Exec(ctx, query)

	return err
}

type pgxRows struct {
	rows pgx.Rows
}

func (r *pgxRows) Next() bool {
	return r.rows.Next()
}

func (r *pgxRows) Scan(dest ...any) error {
	return r.rows.Scan(dest...)
}

func (r *pgxRows) Close() error {
	r.rows.Close()
	return nil
}

/***** database/sql *****/

type sqlAdapter struct {
	db *sql.DB
}

func (a *sqlAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (a *sqlAdapter) Exec(ctx context.Context, query string) error {
	_, err := a.db.ExecContext(ctx, query)

	return err
}

/***** sqlx *****/

type sqlxAdapter struct {
	db *sqlx.DB
}

func (a *sqlxAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := a.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (a *sqlxAdapter) Exec(ctx context.Context, query string) error {
	_, err := a.db.ExecContext(ctx, query)

	return err
}
