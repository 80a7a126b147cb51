package calendar_test

import (
	"testing"
	"time"

	"github.com/rpggio/quill/internal/calendar"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/stretchr/testify/require"
)

func TestMonth_Layout(t *testing.T) {
	// March 2024 starts on a Friday.
	grid := calendar.Month(2024, time.March, nil, time.UTC)

	require.Equal(t, 5, grid.LeadingBlank)
	require.Equal(t, "March 2024", grid.Title)
	require.Len(t, grid.Cells, 5+31)
	for i := 0; i < 5; i++ {
		require.True(t, grid.Cells[i].Blank)
	}
	require.Equal(t, "2024-03-01", grid.Cells[5].Date)
	require.Equal(t, 1, grid.Cells[5].Day)
	require.Equal(t, "2024-03-31", grid.Cells[len(grid.Cells)-1].Date)

	weeks := grid.Weeks()
	require.Len(t, weeks, 6)
	require.Len(t, weeks[5], 1)
}

func TestMonth_SundayStartHasNoBlanks(t *testing.T) {
	// September 2024 starts on a Sunday; February 2024 is a leap month.
	grid := calendar.Month(2024, time.September, nil, time.UTC)
	require.Zero(t, grid.LeadingBlank)
	require.Len(t, grid.Cells, 30)

	feb := calendar.Month(2024, time.February, nil, time.UTC)
	require.Equal(t, 4, feb.LeadingBlank)
	require.Len(t, feb.Cells, 4+29)
}

func TestMonth_CountsEntries(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", CreatedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)},
		{ID: "b", CreatedAt: time.Date(2024, 3, 2, 20, 0, 0, 0, time.UTC)},
		{ID: "c", CreatedAt: time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)},
		{ID: "d", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	grid := calendar.Month(2024, time.March, entries, time.UTC)
	byDate := map[string]int{}
	for _, c := range grid.Cells {
		if !c.Blank {
			byDate[c.Date] = c.Entries
		}
	}
	require.Equal(t, 2, byDate["2024-03-02"])
	require.Equal(t, 1, byDate["2024-03-31"])
	require.Equal(t, 0, byDate["2024-03-01"])

	tokyo := time.FixedZone("JST", 9*60*60)
	grid = calendar.Month(2024, time.March, entries, tokyo)
	byDate = map[string]int{}
	for _, c := range grid.Cells {
		byDate[c.Date] = c.Entries
	}
	require.Zero(t, byDate["2024-03-31"])
}

func TestEntriesOn(t *testing.T) {
	entries := []entry.Entry{
		{ID: "a", CreatedAt: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)},
		{ID: "b", CreatedAt: time.Date(2024, 3, 3, 8, 0, 0, 0, time.UTC)},
		{ID: "c", CreatedAt: time.Date(2024, 3, 2, 22, 0, 0, 0, time.UTC)},
	}

	got := calendar.EntriesOn(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), entries, time.UTC)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "c", got[1].ID)

	require.Empty(t, calendar.EntriesOn(time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), entries, time.UTC))
}

func TestParseMonth(t *testing.T) {
	y, m, err := calendar.ParseMonth("2024-02")
	require.NoError(t, err)
	require.Equal(t, 2024, y)
	require.Equal(t, time.February, m)

	_, _, err = calendar.ParseMonth("Feb 2024")
	require.Error(t, err)
}
