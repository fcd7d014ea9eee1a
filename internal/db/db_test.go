package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *Client {
	t.Helper()
	client, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "data", "app.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Migrate(context.Background())
	require.NoError(t, err)
	return client
}

func TestOpenRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "mysql", "root@/db")
	assert.ErrorIs(t, err, ErrUnknownDriver)

	_, err = Open(ctx, "sqlite", "")
	assert.ErrorIs(t, err, ErrEmptyURL)

	_, err = Open(ctx, "sqlite", "libsql://my-db.turso.io?authToken=x")
	assert.ErrorIs(t, err, ErrRemoteSQLite)

	_, err = Open(ctx, "postgres", "")
	assert.ErrorIs(t, err, ErrEmptyURL)
}

func TestOpenSQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.db")
	client, err := Open(context.Background(), "sqlite", path)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	assert.Equal(t, DialectSQLite, client.Dialect)
	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestOpenSQLiteInMemory(t *testing.T) {
	client, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	version, err := client.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	todos, err := NewTodoStore(client).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestMigrateIsIdempotent(t *testing.T) {
	client := openTestSQLite(t)

	version, err := client.Migrate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestBuilderPlaceholders(t *testing.T) {
	sqlite := newClient(nil, DialectSQLite)
	query, _, err := sqlite.Builder.Select("id").From("todos").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM todos WHERE id = ?", query)

	pg := newClient(nil, DialectPostgres)
	query, _, err = pg.Builder.Select("id").From("todos").Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM todos WHERE id = $1", query)
}

func TestTodoStore(t *testing.T) {
	ctx := context.Background()
	store := NewTodoStore(openTestSQLite(t))
	fixed := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	_, err := store.Create(ctx, "")
	assert.Error(t, err)

	first, err := store.Create(ctx, "Write docs")
	require.NoError(t, err)
	second, err := store.Create(ctx, "Ship it")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	todos, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "Write docs", todos[0].Title)
	assert.False(t, todos[0].Done)
	assert.True(t, fixed.Equal(todos[0].CreatedAt))

	toggled, err := store.Toggle(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Done)

	toggled, err = store.Toggle(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Done)

	_, err = store.Toggle(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Delete(ctx, second.ID))
	assert.ErrorIs(t, store.Delete(ctx, second.ID), ErrNotFound)

	_, err = store.Get(ctx, second.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("ELYSIUM_TEST_POSTGRES_URL")
	if dsn == "" {
		t.Skip("ELYSIUM_TEST_POSTGRES_URL not set, skipping Postgres test")
	}

	ctx := context.Background()
	client, err := OpenPostgres(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	_, err = client.Migrate(ctx)
	require.NoError(t, err)

	store := NewTodoStore(client)
	todo, err := store.Create(ctx, "from postgres")
	require.NoError(t, err)
	defer func() { _ = store.Delete(ctx, todo.ID) }()

	got, err := store.Get(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, "from postgres", got.Title)
}
