package mood

import "time"

// Mood is a named emotional label with an emoji and a display color.
type Mood struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Emoji     string    `json:"emoji"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// Defaults are seeded when the journal has no moods yet.
var Defaults = []CreateRequest{
	{Name: "Happy", Emoji: "😊", Color: "#4CAF50"},
	{Name: "Sad", Emoji: "😢", Color: "#2196F3"},
	{Name: "Angry", Emoji: "😠", Color: "#F44336"},
	{Name: "Excited", Emoji: "🎉", Color: "#FF9800"},
	{Name: "Calm", Emoji: "😌", Color: "#9C27B0"},
	{Name: "Anxious", Emoji: "😰", Color: "#607D8B"},
	{Name: "Grateful", Emoji: "🙏", Color: "#8BC34A"},
}
