package mood

import (
	"context"

	"github.com/rpggio/quill/internal/domain/activity"
)

// Repository provides persistence for moods.
type Repository interface {
	Create(ctx context.Context, m *Mood) error
	Get(ctx context.Context, id string) (*Mood, error)
	List(ctx context.Context) ([]Mood, error)
}

// ActivityRepository logs mood activities.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}
