package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rmarques/notekeeper/pkg/core"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	var filter core.Filter
	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	notes, err := s.svc.List(r.Context(), filter)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if notes == nil {
		notes = []core.Note{}
	}
	s.writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	note, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var draft core.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	note, err := s.svc.Create(r.Context(), draft)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, note)
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	// Patch fields are pointers: keys absent from the body stay nil and
	// leave the stored values untouched. Unknown keys are dropped here
	// rather than stored.
	var patch core.Patch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	note, err := s.svc.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeError maps the typed core errors onto status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, core.ErrNotFound):
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("request failed", "error", err)
	}

	s.writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && s.logger != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
