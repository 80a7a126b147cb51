// Package app wires the journal store to the domain services.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpggio/quill/internal/config"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/sqlite"
	"github.com/rpggio/quill/internal/stats"
)

// App holds the open database and every service built on it.
type App struct {
	DB       *sqlite.DB
	Entries  *entry.Service
	Moods    *mood.Service
	Tags     *tag.Service
	Activity *activity.Service
	Stats    *stats.Service
	Logger   *slog.Logger
}

// Open opens the database at path, applies migrations and builds the services.
func Open(path string, cfg config.StatsConfig, logger *slog.Logger) (*App, error) {
	if err := ensureDBDir(path); err != nil {
		return nil, fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(path)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	a, err := New(db, cfg, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return a, nil
}

// New builds the services over an already migrated database. Unset stats
// settings in cfg fall back to their defaults.
func New(db *sqlite.DB, cfg config.StatsConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	entryRepo := sqlite.NewEntryRepository(db)
	moodRepo := sqlite.NewMoodRepository(db)
	tagRepo := sqlite.NewTagRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)

	engine := stats.NewEngine(loc)
	engine.StreakGraceDays = cfg.GraceDays()
	if cfg.TopTags > 0 {
		engine.TopTags = cfg.TopTags
	}

	return &App{
		DB:       db,
		Entries:  entry.NewService(entryRepo, searchRepo, activityRepo, loc, logger),
		Moods:    mood.NewService(moodRepo, activityRepo, logger),
		Tags:     tag.NewService(tagRepo, logger),
		Activity: activity.NewService(activityRepo, logger),
		Stats:    stats.NewService(entryRepo, moodRepo, engine, logger),
		Logger:   logger,
	}, nil
}

// Close closes the database.
func (a *App) Close() error {
	return a.DB.Close()
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
