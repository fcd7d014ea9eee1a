package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver (pure Go)
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite WASM binary
)

const dbDirPerm = 0o750

// OpenSQLite opens a local SQLite database. path may be a file path, a
// file: URI or ":memory:".
func OpenSQLite(ctx context.Context, path string) (*Client, error) {
	if path == "" {
		return nil, ErrEmptyURL
	}
	if strings.HasPrefix(path, "libsql://") || strings.HasPrefix(path, "wss://") || strings.HasPrefix(path, "https://") {
		return nil, fmt.Errorf("%w: %s", ErrRemoteSQLite, path)
	}

	if isFilePath(path) {
		if err := os.MkdirAll(filepath.Dir(path), dbDirPerm); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	configurePool(db)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Info("database connection established", "driver", DialectSQLite, "path", path)
	return newClient(db, DialectSQLite), nil
}

func isFilePath(path string) bool {
	return path != ":memory:" && !strings.HasPrefix(path, "file:")
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	return nil
}

// SQLite allows a single writer; one long-lived connection also keeps
// ":memory:" databases alive for the life of the pool.
func configurePool(db *sql.DB) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
}
