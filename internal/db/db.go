// Package db builds the SQL client used by route handlers. A Client is
// created once at startup and shared; *sql.DB handles its own pooling.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrRemoteSQLite  = errors.New("remote libsql databases are not supported")
	ErrEmptyURL      = errors.New("database url cannot be empty")
)

// Client pairs a connection pool with a query builder bound to the
// dialect's placeholder format.
type Client struct {
	DB      *sql.DB
	Dialect Dialect
	Builder sq.StatementBuilderType
}

func newClient(db *sql.DB, dialect Dialect) *Client {
	var placeholders sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholders = sq.Dollar
	}
	return &Client{
		DB:      db,
		Dialect: dialect,
		Builder: sq.StatementBuilder.PlaceholderFormat(placeholders).RunWith(db),
	}
}

// Open picks the backend by driver name ("sqlite" or "postgres").
func Open(ctx context.Context, driver, url string) (*Client, error) {
	switch Dialect(driver) {
	case DialectSQLite:
		return OpenSQLite(ctx, url)
	case DialectPostgres:
		return OpenPostgres(ctx, url)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
	}
}

func (c *Client) Close() error {
	if c == nil || c.DB == nil {
		return nil
	}
	return c.DB.Close()
}

func (c *Client) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
