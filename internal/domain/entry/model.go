package entry

import (
	"time"

	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
)

// Entry is one journal writing session.
type Entry struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	MoodID    *string    `json:"mood_id,omitempty"`
	Mood      *mood.Mood `json:"mood"`
	Tags      []tag.Tag  `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// TagNames returns the names of the entry's tags in order.
func (e Entry) TagNames() []string {
	names := make([]string, 0, len(e.Tags))
	for _, t := range e.Tags {
		names = append(names, t.Name)
	}
	return names
}

// SearchResult represents a full-text search hit with relevance
type SearchResult struct {
	Entry   Entry   `json:"entry"`
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}
