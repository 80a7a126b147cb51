package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
)

// ErrUnavailable is returned when the journal cannot be read for aggregation.
var ErrUnavailable = errors.New("aggregation unavailable")

// EntrySource lists every journal entry with mood and tags attached.
type EntrySource interface {
	List(ctx context.Context) ([]entry.Entry, error)
}

// MoodSource lists every known mood.
type MoodSource interface {
	List(ctx context.Context) ([]mood.Mood, error)
}

// Service reads the journal and computes snapshots on demand.
type Service struct {
	entries EntrySource
	moods   MoodSource
	engine  Engine
	now     func() time.Time
	logger  *slog.Logger
}

// NewService creates a stats service.
func NewService(entries EntrySource, moods MoodSource, engine Engine, logger *slog.Logger) *Service {
	return &Service{
		entries: entries,
		moods:   moods,
		engine:  engine,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock replaces the clock used for the current streak.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Snapshot reads all entries and moods and computes a fresh snapshot.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	entries, err := s.entries.List(ctx)
	if err != nil {
		return Snapshot{}, s.unavailable("listing entries", err)
	}
	moods, err := s.moods.List(ctx)
	if err != nil {
		return Snapshot{}, s.unavailable("listing moods", err)
	}

	return s.engine.Compute(entries, moods, s.now()), nil
}

func (s *Service) unavailable(step string, err error) error {
	if s.logger != nil {
		s.logger.Error("stats aggregation failed", "step", step, "error", err)
	}
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, step, err)
}
