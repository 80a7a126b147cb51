package tag

import (
	"context"
	"fmt"
	"log/slog"
)

// Service handles tag queries.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new tag service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns every tag with its usage count, ordered by name.
func (s *Service) List(ctx context.Context) ([]Usage, error) {
	tags, err := s.repo.ListWithUsage(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	if tags == nil {
		tags = []Usage{}
	}
	return tags, nil
}
