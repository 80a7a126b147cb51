package tag

import "time"

// Tag is a free-form label shared across entries by name.
type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Usage is a tag with the number of entries referencing it.
type Usage struct {
	Tag
	EntryCount int `json:"entry_count"`
}
