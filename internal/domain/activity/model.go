package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeEntryCreated ActivityType = "entry_created"
	TypeEntryUpdated ActivityType = "entry_updated"
	TypeEntryDeleted ActivityType = "entry_deleted"
	TypeMoodCreated  ActivityType = "mood_created"
)

// Valid reports whether t is one of the logged event types.
func (t ActivityType) Valid() bool {
	switch t {
	case TypeEntryCreated, TypeEntryUpdated, TypeEntryDeleted, TypeMoodCreated:
		return true
	}
	return false
}

// ActivityEntry represents an event in the journal activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	EntryID      *string      `json:"entry_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	Details      string       `json:"details,omitempty"` // JSON string
	CreatedAt    time.Time    `json:"created_at"`
}
