package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/elysium"
	"github.com/3-lines-studio/elysium/internal/db"
)

func newTestApp(t *testing.T) (http.Handler, *db.TodoStore) {
	t.Helper()
	ctx := context.Background()

	client, err := db.OpenSQLite(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = client.Migrate(ctx)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := elysium.New(elysium.WithLogger(logger), elysium.WithDev(false))
	store := db.NewTodoStore(client)
	Routes(a, store, logger)
	return a.Handler(), store
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestHomePage(t *testing.T) {
	h, _ := newTestApp(t)

	rr := get(t, h, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Server-rendered components")
	assert.Contains(t, rr.Body.String(), `href="/todos"`)
}

func TestTodosEmpty(t *testing.T) {
	h, _ := newTestApp(t)

	rr := get(t, h, "/todos")
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Nothing to do.")
	assert.Contains(t, body, "0 items")
	assert.Contains(t, body, `id="input-1"`)
	assert.Contains(t, body, `id="input-1-helper"`)
}

func TestCreateAndToggleTodo(t *testing.T) {
	h, store := newTestApp(t)

	rr := postForm(t, h, "/todos", url.Values{"title": {"  write tests  "}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/todos", rr.Header().Get("Location"))

	todos, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, "write tests", todos[0].Title)

	body := get(t, h, "/todos").Body.String()
	assert.Contains(t, body, "write tests")
	assert.Contains(t, body, "1 items")
	assert.Contains(t, body, ">Done</button>")

	rr = postForm(t, h, "/todos/1/toggle", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	body = get(t, h, "/todos").Body.String()
	assert.Contains(t, body, ">Undo</button>")
	assert.Contains(t, body, "line-through")
}

func TestCreateTodoValidation(t *testing.T) {
	h, store := newTestApp(t)

	rr := postForm(t, h, "/todos", url.Values{"title": {"   "}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	loc := rr.Header().Get("Location")
	assert.True(t, strings.HasPrefix(loc, "/todos?"), "unexpected location %q", loc)

	todos, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, todos)

	body := get(t, h, loc).Body.String()
	assert.Contains(t, body, "Title is required")
	assert.Contains(t, body, `aria-invalid="true"`)
	assert.NotContains(t, body, "Press Add to save it.")
}

func TestToggleUnknownTodo(t *testing.T) {
	h, _ := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, postForm(t, h, "/todos/42/toggle", nil).Code)
	assert.Equal(t, http.StatusNotFound, postForm(t, h, "/todos/abc/toggle", nil).Code)
}
