package entry

import (
	"context"

	"github.com/rpggio/quill/internal/domain/activity"
)

// Repository provides persistence for entries.
type Repository interface {
	Create(ctx context.Context, e *Entry, tags []TagInput) error
	Get(ctx context.Context, id string) (*Entry, error)
	Update(ctx context.Context, e *Entry, tags []TagInput) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Entry, error)
}

// SearchRepository performs full-text search.
type SearchRepository interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]SearchResult, error)
}

// ActivityRepository logs entry activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
