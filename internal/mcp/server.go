package mcp

import (
	"context"
	"log/slog"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/stats"
)

// EntryService defines entry operations needed by MCP.
type EntryService interface {
	Create(ctx context.Context, in entry.CreateInput) (*entry.Entry, error)
	Get(ctx context.Context, id string) (*entry.Entry, error)
	Update(ctx context.Context, id string, in entry.CreateInput) (*entry.Entry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, c entry.Criteria) ([]entry.Entry, error)
	Search(ctx context.Context, query string, limit int) ([]entry.SearchResult, error)
	Location() *time.Location
}

// MoodService defines mood operations needed by MCP.
type MoodService interface {
	List(ctx context.Context) ([]mood.Mood, error)
	Create(ctx context.Context, req mood.CreateRequest) (*mood.Mood, error)
}

// TagService defines tag operations needed by MCP.
type TagService interface {
	List(ctx context.Context) ([]tag.Usage, error)
}

// StatsService computes journal statistics.
type StatsService interface {
	Snapshot(ctx context.Context) (stats.Snapshot, error)
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	GetRecentActivity(ctx context.Context, opts activity.ListOptions) ([]activity.ActivityEntry, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Entries  EntryService
	Moods    MoodService
	Tags     TagService
	Stats    StatsService
	Activity ActivityService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Version  string
	Logger   *slog.Logger
	// Now overrides the clock used for the default calendar month.
	Now func() time.Time
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	if cfg.Version == "" {
		cfg.Version = "0.1.0"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "quill",
		Version: cfg.Version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(clientSessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	handler := NewHandler(cfg.Services)
	if cfg.Now != nil {
		handler.now = cfg.Now
	}
	registerTools(server, handler, cfg.Logger)

	return server
}
