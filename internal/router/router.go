package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"campusbuddy-backend/internal/handlers"
	"campusbuddy-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	staticHandler *handlers.StaticHandler,
	allowedOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(allowedOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// ──── Chat API ────
	r.Post("/api/chat", chatHandler.Chat)

	// ──── Front end ────
	// Every other GET resolves against the static asset tree, with the
	// entry document as fallback for client-side routes.
	r.Get("/*", staticHandler.Serve)

	notFound := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
