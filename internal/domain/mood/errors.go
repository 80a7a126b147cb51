package mood

import "errors"

var (
	// ErrMoodNotFound indicates the mood doesn't exist.
	ErrMoodNotFound = errors.New("mood not found")
	// ErrInvalidInput indicates invalid mood input.
	ErrInvalidInput = errors.New("invalid mood input")
)
