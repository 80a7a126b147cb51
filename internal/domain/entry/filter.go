package entry

import (
	"strings"
	"time"
)

// Filter returns the entries matching every set criterion, preserving order.
// Day bounds are evaluated in loc.
func Filter(entries []Entry, c Criteria, loc *time.Location) []Entry {
	if c.IsZero() {
		return entries
	}
	if loc == nil {
		loc = time.Local
	}

	query := strings.ToLower(strings.TrimSpace(c.Query))
	tagIDs := toSet(c.TagIDs)
	moodIDs := toSet(c.MoodIDs)

	var from, to time.Time
	if c.From != nil {
		from = startOfDay(*c.From, loc)
	}
	if c.To != nil {
		to = startOfDay(*c.To, loc).AddDate(0, 0, 1)
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if query != "" && !matchesQuery(e, query) {
			continue
		}
		if len(tagIDs) > 0 && !hasAnyTag(e, tagIDs) {
			continue
		}
		if len(moodIDs) > 0 {
			if e.MoodID == nil {
				continue
			}
			if _, ok := moodIDs[*e.MoodID]; !ok {
				continue
			}
		}
		created := e.CreatedAt.In(loc)
		if c.From != nil && created.Before(from) {
			continue
		}
		if c.To != nil && !created.Before(to) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func matchesQuery(e Entry, query string) bool {
	if strings.Contains(strings.ToLower(e.Title), query) ||
		strings.Contains(strings.ToLower(e.Content), query) {
		return true
	}
	for _, t := range e.Tags {
		if strings.Contains(strings.ToLower(t.Name), query) {
			return true
		}
	}
	return e.Mood != nil && strings.Contains(strings.ToLower(e.Mood.Name), query)
}

func hasAnyTag(e Entry, ids map[string]struct{}) bool {
	for _, t := range e.Tags {
		if _, ok := ids[t.ID]; ok {
			return true
		}
	}
	return false
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
