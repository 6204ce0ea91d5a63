package handlers

import (
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the front-end asset tree. Any path that does not
// resolve to a real file falls back to the entry document so the SPA's
// client-side router can handle it.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (h *StaticHandler) Serve(w http.ResponseWriter, r *http.Request) {
	// Clean resolves any ".." segments before the path touches the
	// filesystem, so requests can never escape the asset root.
	reqPath := path.Clean("/" + r.URL.Path)
	full := filepath.Join(h.root, filepath.FromSlash(reqPath))

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(full, "index.html")
		_, err = os.Stat(full)
	}
	if err != nil {
		// SPA fallback: unknown paths get the entry document
		full = filepath.Join(h.root, "index.html")
		if _, err := os.Stat(full); err != nil {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
	}

	f, err := os.Open(full)
	if err != nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	defer f.Close()

	ctype := mime.TypeByExtension(filepath.Ext(full))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	io.Copy(w, f)
}
