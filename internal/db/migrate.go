package db

import (
	"context"
	"embed"
	"fmt"
	iofs "io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

func (c *Client) provider() (*goose.Provider, error) {
	dialect := goose.DialectSQLite3
	dir := "migrations/sqlite"
	if c.Dialect == DialectPostgres {
		dialect = goose.DialectPostgres
		dir = "migrations/postgres"
	}

	fsys, err := iofs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, err
	}
	return goose.NewProvider(dialect, c.DB, fsys)
}

// Migrate applies pending migrations and returns the resulting version.
func (c *Client) Migrate(ctx context.Context) (int64, error) {
	p, err := c.provider()
	if err != nil {
		return 0, fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to run migrations: %w", err)
	}

	version, err := p.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get db version after migration: %w", err)
	}

	if len(results) > 0 {
		slog.Info("database migrations applied", "count", len(results), "version", version)
	} else {
		slog.Debug("database schema up to date", "version", version)
	}
	return version, nil
}
