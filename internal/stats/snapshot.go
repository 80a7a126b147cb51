package stats

// Snapshot is a derived summary of the whole journal. It is never persisted.
type Snapshot struct {
	TotalEntries     int          `json:"total_entries"`
	EntriesByMonth   []MonthCount `json:"entries_by_month"`
	MoodDistribution []MoodCount  `json:"mood_distribution"`
	TopTags          []TagCount   `json:"top_tags"`
	CurrentStreak    int          `json:"current_streak"`
	LongestStreak    int          `json:"longest_streak"`
	LastEntryDate    string       `json:"last_entry_date"`
}

// MonthCount is the number of entries created in one calendar month.
type MonthCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// MoodCount is the number of entries tagged with one mood.
type MoodCount struct {
	MoodID string `json:"mood_id"`
	Mood   string `json:"mood"`
	Emoji  string `json:"emoji"`
	Color  string `json:"color"`
	Count  int    `json:"count"`
}

// TagCount is the number of entries carrying one tag.
type TagCount struct {
	TagID string `json:"tag_id"`
	Tag   string `json:"tag"`
	Color string `json:"color"`
	Count int    `json:"count"`
}
