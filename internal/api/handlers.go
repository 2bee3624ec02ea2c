package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/udisondev/zodiacbuddy/internal/bravebook"
	"github.com/udisondev/zodiacbuddy/internal/observe"
)

// BookSummary is one GET /books entry.
type BookSummary struct {
	ID       uint32 `json:"id"`
	Name     string `json:"name"`
	Enemies  int    `json:"enemies"`
	Dungeons int    `json:"dungeons"`
	Fates    int    `json:"fates"`
	Leves    int    `json:"leves"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"books":  s.ds.Len(),
	})
}

func (s *Server) handleListBooks(w http.ResponseWriter, _ *http.Request) {
	ids := s.ds.BookIDs()
	out := make([]BookSummary, 0, len(ids))
	for _, id := range ids {
		b, err := s.ds.GetValue(id)
		if err != nil {
			continue
		}
		out = append(out, BookSummary{
			ID:       id,
			Name:     b.Name,
			Enemies:  len(b.Enemies),
			Dungeons: len(b.Dungeons),
			Fates:    len(b.Fates),
			Leves:    len(b.Leves),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "book id must be an unsigned integer")
		return
	}

	book, err := s.ds.GetValue(uint32(id))
	switch {
	case errors.Is(err, bravebook.ErrBookNotFound):
		s.metrics.RecordBookLookup(r.Context(), observe.StatusNotFound)
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.metrics.RecordBookLookup(r.Context(), observe.StatusError)
		slog.Error("book lookup failed", "book_id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.metrics.RecordBookLookup(r.Context(), observe.StatusFound)
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) handleFindTargets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxSearchLimit)
	}

	matches := s.ds.FindTargets(q, limit)
	s.metrics.RecordTargetSearch(r.Context(), len(matches) > 0)
	if matches == nil {
		matches = []bravebook.TargetMatch{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("writing response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
