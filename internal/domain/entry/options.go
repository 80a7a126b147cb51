package entry

import "time"

// Criteria narrows a list of entries. Zero values disable a filter.
type Criteria struct {
	Query   string
	TagIDs  []string
	MoodIDs []string
	// From and To are calendar days; both ends are inclusive.
	From *time.Time
	To   *time.Time
}

// IsZero reports whether no filter is set.
func (c Criteria) IsZero() bool {
	return c.Query == "" && len(c.TagIDs) == 0 && len(c.MoodIDs) == 0 && c.From == nil && c.To == nil
}

// SearchOptions provides paging for full-text search.
type SearchOptions struct {
	Limit  int
	Offset int
}
