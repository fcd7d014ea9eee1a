package http

import (
	"bytes"
	"html"
	"log/slog"
	"net/http"

	"github.com/3-lines-studio/elysium/internal/core"
	"github.com/3-lines-studio/elysium/internal/reload"
	"github.com/3-lines-studio/elysium/internal/types"
	"github.com/3-lines-studio/elysium/internal/usecase"
)

type PageHandler struct {
	service *usecase.PageService
	config  types.PageConfig
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(
	service *usecase.PageService,
	config types.PageConfig,
	isDev bool,
	logger *slog.Logger,
) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		config:  config,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	input := usecase.ServePageInput{
		Config:  h.config,
		IsDev:   h.isDev,
		Request: req,
	}
	if h.isDev {
		input.ReloadScript = reload.Script
	}

	output := h.service.ServePage(req.Context(), input)

	switch {
	case output.Error != nil:
		h.logger.ErrorContext(req.Context(), "page failed", "path", req.URL.Path, "error", output.Error)
		ServeError(w, http.StatusInternalServerError, output.Error, h.isDev)
	case output.IsRedirect():
		http.Redirect(w, req, output.RedirectURL, output.RedirectStatus)
	default:
		serveHTML(w, output.HTML)
	}
}

func serveHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// ServeError renders the error page. The message is only shown in dev mode.
func ServeError(w http.ResponseWriter, status int, err error, isDev bool) {
	data := core.ErrorData{
		Status:  status,
		Title:   http.StatusText(status),
		Message: err.Error(),
		IsDev:   isDev,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	var buf bytes.Buffer
	if err := core.ErrorTemplate.Execute(&buf, data); err != nil {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
