package app

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/elysium"
	"github.com/3-lines-studio/elysium/internal/db"
)

const maxTitleLength = 200

// Routes mounts the demo pages and form actions on a.
func Routes(a *elysium.App, store *db.TodoStore, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &todoHandlers{store: store, logger: logger}

	a.Handle("/", a.Page(homePage, elysium.WithTitle("Elysium")))
	a.Method(http.MethodGet, "/todos", a.Page(todosPage,
		elysium.WithTitle("Todos"),
		elysium.WithLoader(h.load),
	))
	a.Method(http.MethodPost, "/todos", http.HandlerFunc(h.create))
	a.Method(http.MethodPost, "/todos/{id}/toggle", http.HandlerFunc(h.toggle))
}

type todoHandlers struct {
	store  *db.TodoStore
	logger *slog.Logger
}

func (h *todoHandlers) load(req *http.Request) (map[string]any, error) {
	todos, err := h.store.List(req.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"todos": todos,
		"error": req.URL.Query().Get("error"),
		"title": req.URL.Query().Get("title"),
	}, nil
}

func (h *todoHandlers) create(w http.ResponseWriter, req *http.Request) {
	title := strings.TrimSpace(req.FormValue("title"))
	if msg := validateTitle(title); msg != "" {
		q := url.Values{"error": {msg}, "title": {title}}
		http.Redirect(w, req, "/todos?"+q.Encode(), http.StatusSeeOther)
		return
	}

	todo, err := h.store.Create(req.Context(), title)
	if err != nil {
		h.logger.ErrorContext(req.Context(), "create todo failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.logger.InfoContext(req.Context(), "todo created", "id", todo.ID)
	http.Redirect(w, req, "/todos", http.StatusSeeOther)
}

func (h *todoHandlers) toggle(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	if _, err := h.store.Toggle(req.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.NotFound(w, req)
			return
		}
		h.logger.ErrorContext(req.Context(), "toggle todo failed", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, req, "/todos", http.StatusSeeOther)
}

func validateTitle(title string) string {
	switch {
	case title == "":
		return "Title is required"
	case len(title) > maxTitleLength:
		return "Title must be at most 200 characters"
	}
	return ""
}
