package activity

import "context"

// Repository stores the journal's activity log.
type Repository interface {
	Log(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, opts ListOptions) ([]ActivityEntry, error)
}
