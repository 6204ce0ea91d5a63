package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"index.html":      "<html>entry</html>",
		"app.js":          "console.log('app')",
		"data.unknownext": "binary-ish",
		"docs/index.html": "<html>docs</html>",
		"docs/page.html":  "<html>page</html>",
	}
	for name, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func getStatic(t *testing.T, h *StaticHandler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.Serve(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestStatic_ServesFile(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/app.js")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != "console.log('app')" {
		t.Errorf("Unexpected body: %q", rr.Body.String())
	}
	if ctype := rr.Header().Get("Content-Type"); ctype == "" || ctype == "application/octet-stream" {
		t.Errorf("Expected a JavaScript content type, got %q", ctype)
	}
}

func TestStatic_UnknownExtensionIsOctetStream(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/data.unknownext")

	if ctype := rr.Header().Get("Content-Type"); ctype != "application/octet-stream" {
		t.Errorf("Expected application/octet-stream, got %q", ctype)
	}
}

func TestStatic_SPAFallback(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/does-not-exist.xyz")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 for SPA fallback, got %d", rr.Code)
	}
	if rr.Body.String() != "<html>entry</html>" {
		t.Errorf("Expected entry document, got %q", rr.Body.String())
	}
}

func TestStatic_ClientRoutePath(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/chat/settings")

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	if rr.Body.String() != "<html>entry</html>" {
		t.Errorf("Expected entry document, got %q", rr.Body.String())
	}
}

func TestStatic_DirectoryServesItsIndex(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/docs")

	if rr.Body.String() != "<html>docs</html>" {
		t.Errorf("Expected docs index, got %q", rr.Body.String())
	}
}

func TestStatic_RootServesEntryDocument(t *testing.T) {
	h := NewStaticHandler(newStaticDir(t))

	rr := getStatic(t, h, "/")

	if rr.Body.String() != "<html>entry</html>" {
		t.Errorf("Expected entry document, got %q", rr.Body.String())
	}
}

func TestStatic_TraversalFallsBackToEntry(t *testing.T) {
	dir := newStaticDir(t)
	// place a file just outside the root that must stay unreachable
	outside := filepath.Join(filepath.Dir(dir), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}
	h := NewStaticHandler(dir)

	rr := getStatic(t, h, "/../secret.txt")

	if rr.Body.String() == "secret" {
		t.Fatal("Traversal escaped the asset root")
	}
	if rr.Body.String() != "<html>entry</html>" {
		t.Errorf("Expected entry document, got %q", rr.Body.String())
	}
}

func TestStatic_MissingEntryDocumentIs404(t *testing.T) {
	h := NewStaticHandler(t.TempDir())

	rr := getStatic(t, h, "/anything")

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}
