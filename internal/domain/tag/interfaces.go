package tag

import "context"

// Repository provides read access to tags.
type Repository interface {
	ListWithUsage(ctx context.Context) ([]Usage, error)
}
