package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// New builds the HTTP server: the JSON filter API plus the static frontend.
func New(port string, staticDir string, handlers *Handlers) *http.Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", handleHealthz)
	r.Get("/api/posts", handlers.HandlePosts)
	r.Get("/api/search", handlers.HandleSearch)
	r.Get("/api/status", handlers.HandleStatus)
	r.Post("/api/reload", handlers.HandleReload)
	r.Handle("/*", http.FileServer(http.Dir(staticDir)))

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("server listening", "addr", "http://localhost:"+port)
	return srv
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
