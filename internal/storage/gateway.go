package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipes/internal/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Gateway is the single execution primitive shared by every repository.
// Each call runs one parameterized statement on a pooled connection; the pool
// takes the connection back on every exit path.
type Gateway struct {
	db *sqlx.DB
}

// New wraps an already opened pool.
func New(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

// Connect opens the pgx-backed pool, applies the connection ceiling and pings it.
func Connect(ctx context.Context, dsn string, requireSSL bool, maxOpen, maxIdle int) (*sqlx.DB, error) {
	if requireSSL {
		var err error
		if dsn, err = withSSLMode(dsn, "require"); err != nil {
			return nil, err
		}
	}

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &StorageError{Op: "ping", Err: err}
	}
	return db, nil
}

// withSSLMode forces sslmode on a URL-style connection string.
func withSSLMode(dsn, mode string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse database url: %w", err)
	}
	q := u.Query()
	q.Set("sslmode", mode)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Get scans exactly one row into dest. A missing row surfaces as a
// StorageError wrapping sql.ErrNoRows.
func (g *Gateway) Get(ctx context.Context, dest any, query string, args ...any) error {
	err := g.db.GetContext(ctx, dest, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return &StorageError{Op: "get", Query: query, Err: err}
	}
	return nil
}

// Select scans all rows into dest, which must be a pointer to a slice.
func (g *Gateway) Select(ctx context.Context, dest any, query string, args ...any) error {
	err := g.db.SelectContext(ctx, dest, query, args...)
	logQuery(query, args, err)
	if err != nil {
		return &StorageError{Op: "select", Query: query, Err: err}
	}
	return nil
}

// Exec runs a statement that returns no rows and reports the affected count.
func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := g.db.ExecContext(ctx, query, args...)
	var affected int64
	if err == nil {
		affected, err = res.RowsAffected()
	}
	logQuery(query, args, err)
	if err != nil {
		return 0, &StorageError{Op: "exec", Query: query, Err: err}
	}
	return affected, nil
}

// Ping runs the trivial liveness query.
func (g *Gateway) Ping(ctx context.Context) error {
	var one int
	return g.Get(ctx, &one, "SELECT 1")
}

// logQuery logs the statement on a single line.
func logQuery(query string, args []any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
}
