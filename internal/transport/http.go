package transport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/stats"
)

// EntryService is the entry behavior the API needs.
type EntryService interface {
	Create(ctx context.Context, in entry.CreateInput) (*entry.Entry, error)
	Get(ctx context.Context, id string) (*entry.Entry, error)
	Update(ctx context.Context, id string, in entry.CreateInput) (*entry.Entry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c entry.Criteria) ([]entry.Entry, error)
	Search(ctx context.Context, query string, limit int) ([]entry.SearchResult, error)
	Location() *time.Location
}

// MoodService lists and creates moods.
type MoodService interface {
	List(ctx context.Context) ([]mood.Mood, error)
	Create(ctx context.Context, req mood.CreateRequest) (*mood.Mood, error)
}

// TagService lists tags.
type TagService interface {
	List(ctx context.Context) ([]tag.Usage, error)
}

// StatsService computes snapshots.
type StatsService interface {
	Snapshot(ctx context.Context) (stats.Snapshot, error)
}

// ActivityService reads the activity log.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListOptions) ([]activity.ActivityEntry, error)
}

// Services groups the handlers' dependencies.
type Services struct {
	Entries  EntryService
	Moods    MoodService
	Tags     TagService
	Stats    StatsService
	Activity ActivityService
}

// Server wires HTTP handlers.
type Server struct {
	svc    Services
	logger *slog.Logger
	now    func() time.Time
}

// NewServer creates the HTTP router with middleware. mcpHandler is mounted at
// /mcp when non-nil.
func NewServer(svc Services, mcpHandler http.Handler, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	srv := &Server{svc: svc, logger: logger, now: time.Now}

	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/journal", func(r chi.Router) {
			r.Get("/", srv.handleListEntries)
			r.Post("/", srv.handleCreateEntry)
			r.Get("/{id}", srv.handleGetEntry)
			r.Put("/{id}", srv.handleUpdateEntry)
			r.Delete("/{id}", srv.handleDeleteEntry)
		})
		r.Get("/search", srv.handleSearch)
		r.Get("/moods", srv.handleListMoods)
		r.Post("/moods", srv.handleCreateMood)
		r.Get("/tags", srv.handleListTags)
		r.Get("/stats", srv.handleStats)
		r.Get("/calendar", srv.handleCalendar)
		r.Get("/calendar/day", srv.handleCalendarDay)
		r.Get("/activity", srv.handleActivity)
		r.Post("/preview", srv.handlePreview)
		r.Get("/export", srv.handleExport)
	})

	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
