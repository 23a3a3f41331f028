// Package httpapi exposes the note operations over HTTP.
//
// It is a thin translation layer: routes map onto the five core
// operations, and the typed errors map onto status codes
// (validation -> 400, not found -> 404, storage -> 500).
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rmarques/notekeeper/pkg/core"
)

// Server wires the note service into an http.Handler.
type Server struct {
	svc    *core.Service
	logger *slog.Logger
}

// NewServer creates a new HTTP server around the given service.
func NewServer(svc *core.Service, logger *slog.Logger) *Server {
	return &Server{svc: svc, logger: logger}
}

// Router builds the chi router with all note endpoints.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/notes", s.handleList)
	r.Post("/notes", s.handleCreate)
	r.Get("/notes/{id}", s.handleGet)
	r.Put("/notes/{id}", s.handleUpdate)
	r.Delete("/notes/{id}", s.handleDelete)

	r.Get("/health", s.handleHealth)

	return r
}

// requestLogger logs one line per request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if s.logger != nil {
			s.logger.Debug("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"duration", time.Since(start),
			)
		}
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
