package mood

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

// Service handles mood operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new mood service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest defines mood creation inputs.
type CreateRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

// Create creates a new mood.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Mood, error) {
	name := strings.TrimSpace(req.Name)
	emoji := strings.TrimSpace(req.Emoji)
	color := strings.TrimSpace(req.Color)
	if name == "" || emoji == "" || color == "" {
		return nil, ErrInvalidInput
	}

	m := &Mood{
		ID:        uuid.NewString(),
		Name:      name,
		Emoji:     emoji,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("creating mood: %w", err)
	}

	s.logActivity(ctx, m)
	return m, nil
}

func (s *Service) logActivity(ctx context.Context, m *Mood) {
	if s.activities == nil {
		return
	}
	if err := s.activities.Log(ctx, &activity.ActivityEntry{
		ActivityType: activity.TypeMoodCreated,
		Summary:      fmt.Sprintf("created mood %s %s", m.Emoji, m.Name),
	}); err != nil && s.logger != nil {
		s.logger.Warn("failed to log activity", "type", activity.TypeMoodCreated, "mood_id", m.ID, "error", err)
	}
}

// Get fetches a mood by ID.
func (s *Service) Get(ctx context.Context, id string) (*Mood, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMoodNotFound
		}
		return nil, fmt.Errorf("getting mood: %w", err)
	}
	return m, nil
}

// List returns all moods.
func (s *Service) List(ctx context.Context) ([]Mood, error) {
	return s.repo.List(ctx)
}

// EnsureDefaults seeds the default moods when none exist and returns the current set.
func (s *Service) EnsureDefaults(ctx context.Context) ([]Mood, error) {
	moods, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing moods: %w", err)
	}
	if len(moods) > 0 {
		return moods, nil
	}

	for _, def := range Defaults {
		if _, err := s.Create(ctx, def); err != nil {
			return nil, fmt.Errorf("seeding mood %s: %w", def.Name, err)
		}
	}
	if s.logger != nil {
		s.logger.Info("seeded default moods", "count", len(Defaults))
	}

	return s.repo.List(ctx)
}
