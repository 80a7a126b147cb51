package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
)

const (
	defaultGraceDays = 1
	defaultTopTags   = 10
)

// Engine computes snapshots. Use NewEngine for the default settings.
type Engine struct {
	// Location is the reporting time zone for day and month boundaries.
	Location *time.Location
	// StreakGraceDays is how far the latest entry may be from today for the
	// current streak to count. Negative values mean the default.
	StreakGraceDays int
	// TopTags caps the tag ranking. Zero or negative means the default.
	TopTags int
}

// NewEngine returns an engine with the default settings in loc.
func NewEngine(loc *time.Location) Engine {
	return Engine{Location: loc, StreakGraceDays: defaultGraceDays, TopTags: defaultTopTags}
}

func (e Engine) location() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

func (e Engine) graceDays() int {
	if e.StreakGraceDays < 0 {
		return defaultGraceDays
	}
	return e.StreakGraceDays
}

func (e Engine) topTags() int {
	if e.TopTags <= 0 {
		return defaultTopTags
	}
	return e.TopTags
}

// Compute derives a snapshot from the entries and known moods as of now.
// It never fails and does not read the clock.
func (e Engine) Compute(entries []entry.Entry, moods []mood.Mood, now time.Time) Snapshot {
	loc := e.location()

	times := make([]time.Time, 0, len(entries))
	for _, en := range entries {
		times = append(times, en.CreatedAt)
	}
	days := uniqueDays(times, loc)

	snap := Snapshot{
		TotalEntries:     len(entries),
		EntriesByMonth:   byMonth(entries, loc),
		MoodDistribution: moodDistribution(entries, moods),
		TopTags:          topTags(entries, e.topTags()),
		LongestStreak:    longestStreak(days),
		CurrentStreak:    currentStreak(days, dayOf(now, loc), e.graceDays()),
	}
	if len(days) > 0 {
		snap.LastEntryDate = days[len(days)-1].String()
	}
	return snap
}

func byMonth(entries []entry.Entry, loc *time.Location) []MonthCount {
	counts := make(map[string]int)
	for _, en := range entries {
		t := en.CreatedAt.In(loc)
		counts[fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))]++
	}

	months := make([]MonthCount, 0, len(counts))
	for month, count := range counts {
		months = append(months, MonthCount{Month: month, Count: count})
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})
	return months
}

func moodDistribution(entries []entry.Entry, moods []mood.Mood) []MoodCount {
	byID := make(map[string]*MoodCount, len(moods))
	order := make([]string, 0, len(moods))
	add := func(m mood.Mood) {
		if _, ok := byID[m.ID]; ok {
			return
		}
		byID[m.ID] = &MoodCount{MoodID: m.ID, Mood: m.Name, Emoji: m.Emoji, Color: m.Color}
		order = append(order, m.ID)
	}

	for _, m := range moods {
		add(m)
	}
	for _, en := range entries {
		if en.MoodID == nil {
			continue
		}
		if _, ok := byID[*en.MoodID]; !ok {
			if en.Mood != nil {
				add(*en.Mood)
			} else {
				add(mood.Mood{ID: *en.MoodID})
			}
		}
		byID[*en.MoodID].Count++
	}

	out := make([]MoodCount, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Mood != out[j].Mood {
			return out[i].Mood < out[j].Mood
		}
		return out[i].MoodID < out[j].MoodID
	})
	return out
}

func topTags(entries []entry.Entry, limit int) []TagCount {
	byID := make(map[string]*TagCount)
	for _, en := range entries {
		seen := make(map[string]struct{}, len(en.Tags))
		for _, t := range en.Tags {
			if _, dup := seen[t.ID]; dup {
				continue
			}
			seen[t.ID] = struct{}{}

			tc, ok := byID[t.ID]
			if !ok {
				tc = &TagCount{TagID: t.ID, Tag: t.Name, Color: t.Color}
				byID[t.ID] = tc
			}
			tc.Count++
		}
	}

	out := make([]TagCount, 0, len(byID))
	for _, tc := range byID {
		out = append(out, *tc)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Tag != out[j].Tag {
			return out[i].Tag < out[j].Tag
		}
		return out[i].TagID < out[j].TagID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
