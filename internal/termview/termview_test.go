package termview

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/stats"
	"github.com/stretchr/testify/require"
)

func TestStats_Empty(t *testing.T) {
	out := Stats(stats.Snapshot{}, 60)
	require.Contains(t, out, "0 entries")
	require.Contains(t, out, "No entries yet")
}

func TestStats_Populated(t *testing.T) {
	snap := stats.Snapshot{
		TotalEntries:   3,
		EntriesByMonth: []stats.MonthCount{{Month: "2024-01", Count: 2}, {Month: "2024-02", Count: 1}},
		MoodDistribution: []stats.MoodCount{
			{MoodID: "m1", Mood: "Happy", Emoji: "😊", Color: "#f59e0b", Count: 2},
			{MoodID: "m2", Mood: "Sad", Color: "#3b82f6", Count: 0},
		},
		TopTags:       []stats.TagCount{{TagID: "t1", Tag: "work", Color: "#000000", Count: 2}},
		CurrentStreak: 1,
		LongestStreak: 2,
		LastEntryDate: "2024-02-01",
	}

	out := Stats(snap, 80)
	for _, want := range []string{"3 entries", "1 day", "2 days", "2024-02-01", "Happy", "Sad", "#work", "Entries per month"} {
		require.Contains(t, out, want)
	}
}

func TestMonthChart_KeepsRecentMonths(t *testing.T) {
	months := make([]stats.MonthCount, 0, 15)
	for i := 0; i < 15; i++ {
		months = append(months, stats.MonthCount{
			Month: time.Date(2023, time.Month(1+i), 1, 0, 0, 0, 0, time.UTC).Format("2006-01"),
			Count: i + 1,
		})
	}
	out := MonthChart(months, 60, 8)
	require.NotEmpty(t, strings.TrimSpace(out))
}

func TestPadRight_IgnoresANSI(t *testing.T) {
	styled := "\x1b[31m#a\x1b[0m"
	out := padRight(styled, 5)
	require.Equal(t, 5, lipgloss.Width(out))
	require.Equal(t, styled+"   ", out)
	require.Equal(t, "too long", padRight("too long", 3))
}

func TestTagLines_Aligned(t *testing.T) {
	out := tagLines([]stats.TagCount{
		{TagID: "t1", Tag: "a", Color: "#ff0000", Count: 12},
		{TagID: "t2", Tag: "longer-name", Color: "#00ff00", Count: 3},
	})
	rows := strings.Split(out, "\n")
	require.Len(t, rows, 2)
	require.Equal(t, lipgloss.Width(rows[0]), lipgloss.Width(rows[1]))
}

func TestMonthLabel(t *testing.T) {
	require.Equal(t, "Mar", monthLabel("2024-03"))
	require.Equal(t, "bad", monthLabel("bad"))
}

func TestEntry(t *testing.T) {
	moodID := "m1"
	e := entry.Entry{
		ID:        "e1",
		Title:     "Morning pages",
		Content:   "Slept well.",
		MoodID:    &moodID,
		Mood:      &mood.Mood{ID: moodID, Name: "Calm", Emoji: "😌", Color: "#22c55e"},
		Tags:      []tag.Tag{{ID: "t1", Name: "habits"}},
		CreatedAt: time.Date(2024, time.May, 6, 7, 30, 0, 0, time.UTC),
	}

	out := Entry(e, time.UTC, 60)
	for _, want := range []string{"Morning pages", "Mon, May 6 2024 07:30", "Calm", "#habits", "Slept well."} {
		require.Contains(t, out, want)
	}
}
