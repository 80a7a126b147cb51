package entry

import "errors"

var (
	// ErrEntryNotFound indicates the entry doesn't exist.
	ErrEntryNotFound = errors.New("journal entry not found")
	// ErrMoodNotFound indicates the referenced mood doesn't exist.
	ErrMoodNotFound = errors.New("mood not found")
	// ErrInvalidInput indicates invalid entry input.
	ErrInvalidInput = errors.New("invalid entry input")
	// ErrMissingTitle indicates the title is blank.
	ErrMissingTitle = errors.New("title is required")
	// ErrMissingContent indicates the content is blank.
	ErrMissingContent = errors.New("content is required")
)
