package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/quill/internal/domain/activity"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/repository"
	"github.com/rpggio/quill/internal/stats"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// invalidInput reports a malformed tool argument.
func invalidInput(format string, args ...any) *APIError {
	return &APIError{Code: "INVALID_INPUT", Message: fmt.Sprintf(format, args...)}
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch {
	case errors.Is(err, entry.ErrEntryNotFound):
		return &APIError{Code: "ENTRY_NOT_FOUND", Message: "entry not found", RecoveryHint: "Use list_entries or search_entries to find the id"}
	case errors.Is(err, entry.ErrMoodNotFound), errors.Is(err, mood.ErrMoodNotFound):
		return &APIError{Code: "MOOD_NOT_FOUND", Message: "mood not found", RecoveryHint: "Call list_moods for valid mood ids"}
	case errors.Is(err, entry.ErrInvalidInput), errors.Is(err, mood.ErrInvalidInput), errors.Is(err, activity.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, repository.ErrConflict):
		return &APIError{Code: "CONFLICT", Message: "already exists", RecoveryHint: "Pick a different name"}
	case errors.Is(err, stats.ErrUnavailable):
		return &APIError{Code: "STATS_UNAVAILABLE", Message: "aggregation unavailable", RecoveryHint: "Retry later"}
	default:
		return nil
	}
}
