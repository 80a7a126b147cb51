package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rpggio/quill/internal/calendar"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/export"
	"github.com/rpggio/quill/internal/markdown"
)

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.Stats.Snapshot(r.Context())
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	loc := s.svc.Entries.Location()
	now := s.now().In(loc)
	year, month := now.Year(), now.Month()
	if raw := r.URL.Query().Get("month"); raw != "" {
		var err error
		year, month, err = calendar.ParseMonth(raw)
		if err != nil {
			writeError(w, s.logger, badRequest("month must be YYYY-MM"))
			return
		}
	}

	entries, err := s.svc.Entries.List(r.Context(), entry.Criteria{})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, calendar.Month(year, month, entries, loc))
}

func (s *Server) handleCalendarDay(w http.ResponseWriter, r *http.Request) {
	loc := s.svc.Entries.Location()
	day, err := time.ParseInLocation(time.DateOnly, r.URL.Query().Get("date"), loc)
	if err != nil {
		writeError(w, s.logger, badRequest("date must be YYYY-MM-DD"))
		return
	}

	entries, err := s.svc.Entries.List(r.Context(), entry.Criteria{})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, calendar.EntriesOn(day, entries, loc))
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit")
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	items, err := s.svc.Activity.GetRecentActivity(r.Context(), activity.ListOptions{Limit: limit})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

type previewRequest struct {
	Content string `json:"content"`
}

type previewResponse struct {
	HTML string `json:"html"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, previewResponse{HTML: markdown.Render(req.Content)})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, s.logger, badRequest("%v", err))
		return
	}

	entries, err := s.svc.Entries.List(r.Context(), entry.Criteria{})
	if err != nil {
		writeError(w, s.logger, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="journal.%s"`, format))
	if err := export.Write(w, format, entries); err != nil {
		s.logger.Error("export failed", "format", format, "error", err)
	}
}
