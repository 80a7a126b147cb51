package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpggio/quill/internal/domain/entry"
)

type successResponse struct {
	Success bool `json:"success"`
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	c, err := s.criteriaFromQuery(r)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	entries, err := s.svc.Entries.List(r.Context(), c)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var in entry.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, s.logger, err)
		return
	}

	e, err := s.svc.Entries.Create(r.Context(), in)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) handleGetEntry(w http.ResponseWriter, r *http.Request) {
	e, err := s.svc.Entries.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleUpdateEntry(w http.ResponseWriter, r *http.Request) {
	var in entry.CreateInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, s.logger, err)
		return
	}

	e, err := s.svc.Entries.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleDeleteEntry(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Entries.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	results, err := s.svc.Entries.Search(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// criteriaFromQuery reads q, tag, mood, from and to. Dates are YYYY-MM-DD in
// the journal's reporting location.
func (s *Server) criteriaFromQuery(r *http.Request) (entry.Criteria, error) {
	q := r.URL.Query()
	c := entry.Criteria{
		Query:   q.Get("q"),
		TagIDs:  q["tag"],
		MoodIDs: q["mood"],
	}

	loc := s.svc.Entries.Location()
	for _, bound := range []struct {
		name string
		dst  **time.Time
	}{{"from", &c.From}, {"to", &c.To}} {
		raw := q.Get(bound.name)
		if raw == "" {
			continue
		}
		t, err := time.ParseInLocation(time.DateOnly, raw, loc)
		if err != nil {
			return entry.Criteria{}, badRequest("%s must be YYYY-MM-DD", bound.name)
		}
		*bound.dst = &t
	}
	return c, nil
}

func intParam(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, badRequest("%s must be a non-negative integer", name)
	}
	return n, nil
}
