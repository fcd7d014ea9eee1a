package http

import (
	"net/http"

	"github.com/3-lines-studio/elysium/internal/adapters/fs"
	"github.com/3-lines-studio/elysium/internal/core"
)

const PublicPrefix = "/public"

type AssetHandler struct {
	files  fs.FileSystem
	prefix string
	isDev  bool
}

func NewAssetHandler(files fs.FileSystem, isDev bool) http.Handler {
	return &AssetHandler{
		files:  files,
		prefix: PublicPrefix,
		isDev:  isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	path, ok := core.CleanAssetPath(req.URL.Path, h.prefix)
	if !ok || h.files == nil || !h.files.FileExists(path) {
		http.NotFound(w, req)
		return
	}

	data, err := h.files.ReadFile(path)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	etag := core.ETag(data)
	w.Header().Set("ETag", etag)
	if h.isDev {
		w.Header().Set("Cache-Control", "no-cache")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=3600")
	}

	if match := req.Header.Get("If-None-Match"); match != "" && match == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(path))
	if req.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}
	_, _ = w.Write(data)
}
