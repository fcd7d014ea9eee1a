package http

import (
	"net/http"

	"github.com/3-lines-studio/elysium/internal/reload"
)

type ReloadHandler struct {
	hub *reload.Hub
}

func NewReloadHandler(hub *reload.Hub) http.Handler {
	return &ReloadHandler{hub: hub}
}

func (h *ReloadHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if h.hub == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	_, _ = w.Write([]byte("event: ready\ndata: 1\n\n"))
	flusher.Flush()

	ch := h.hub.Subscribe()
	defer h.hub.Unsubscribe(ch)

	for {
		select {
		case <-req.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write([]byte("event: reload\ndata: 1\n\n"))
			flusher.Flush()
		}
	}
}
