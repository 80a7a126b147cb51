package transport

import (
	"net/http"

	"github.com/rpggio/quill/internal/domain/mood"
)

func (s *Server) handleListMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := s.svc.Moods.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, moods)
}

func (s *Server) handleCreateMood(w http.ResponseWriter, r *http.Request) {
	var req mood.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}

	m, err := s.svc.Moods.Create(r.Context(), req)
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.svc.Tags.List(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}
