package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/repository"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// Service handles journal entry operations.
type Service struct {
	repo       Repository
	search     SearchRepository
	activities ActivityRepository
	loc        *time.Location
	logger     *slog.Logger
}

// NewService creates a new entry service. loc is used for date filters.
func NewService(repo Repository, search SearchRepository, activities ActivityRepository, loc *time.Location, logger *slog.Logger) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{
		repo:       repo,
		search:     search,
		activities: activities,
		loc:        loc,
		logger:     logger,
	}
}

// Create validates and stores a new entry.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Entry, error) {
	cmd, err := ValidateInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	e := &Entry{
		ID:        uuid.NewString(),
		Title:     cmd.Title,
		Content:   cmd.Content,
		MoodID:    cmd.MoodID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, e, cmd.Tags); err != nil {
		if errors.Is(err, repository.ErrForeignKeyViolation) {
			return nil, ErrMoodNotFound
		}
		return nil, fmt.Errorf("creating entry: %w", err)
	}

	s.logActivity(ctx, e.ID, activity.TypeEntryCreated, fmt.Sprintf("created entry %q", e.Title))

	return s.Get(ctx, e.ID)
}

// Get fetches an entry by ID with its mood and tags.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("getting entry: %w", err)
	}
	return e, nil
}

// Update replaces title, content, mood and tags of an entry. CreatedAt is kept.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (*Entry, error) {
	cmd, err := ValidateInput(in)
	if err != nil {
		return nil, err
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Title = cmd.Title
	e.Content = cmd.Content
	e.MoodID = cmd.MoodID
	e.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, e, cmd.Tags); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrEntryNotFound
		case errors.Is(err, repository.ErrForeignKeyViolation):
			return nil, ErrMoodNotFound
		}
		return nil, fmt.Errorf("updating entry: %w", err)
	}

	s.logActivity(ctx, e.ID, activity.TypeEntryUpdated, fmt.Sprintf("updated entry %q", e.Title))

	return s.Get(ctx, e.ID)
}

// Delete removes an entry and its tag links.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("deleting entry: %w", err)
	}

	s.logActivity(ctx, id, activity.TypeEntryDeleted, "deleted entry")
	return nil
}

// List returns entries newest first, narrowed by c.
func (s *Service) List(ctx context.Context, c Criteria) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return Filter(entries, c, s.loc), nil
}

// Recent returns up to limit of the newest entries.
func (s *Service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	entries, err := s.List(ctx, Criteria{})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// Search runs a ranked full-text search over titles and content.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", ErrInvalidInput)
	}
	if s.search == nil {
		return nil, fmt.Errorf("search is not configured")
	}

	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	results, err := s.search.Search(ctx, query, SearchOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}
	if results == nil {
		results = []SearchResult{}
	}
	return results, nil
}

// Location returns the time zone used for date filters.
func (s *Service) Location() *time.Location {
	return s.loc
}

func (s *Service) logActivity(ctx context.Context, entryID string, activityType activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	id := entryID
	if err := s.activities.Log(ctx, &activity.ActivityEntry{
		EntryID:      &id,
		ActivityType: activityType,
		Summary:      summary,
	}); err != nil && s.logger != nil {
		s.logger.Warn("failed to log activity", "type", activityType, "entry_id", entryID, "error", err)
	}
}
