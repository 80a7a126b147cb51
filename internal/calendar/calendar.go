// Package calendar lays out journal entries on a month grid.
package calendar

import (
	"time"

	"github.com/rpggio/quill/internal/domain/entry"
)

// Cell is one slot of a month grid. Blank cells pad the first week.
type Cell struct {
	Blank   bool   `json:"blank"`
	Date    string `json:"date,omitempty"` // YYYY-MM-DD
	Day     int    `json:"day,omitempty"`
	Entries int    `json:"entries"`
}

// Grid is a Sunday-first month layout.
type Grid struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	Title        string `json:"title"`
	LeadingBlank int    `json:"leading_blank"`
	Cells        []Cell `json:"cells"`
}

// Weeks splits the cells into rows of seven. The last row may be short.
func (g Grid) Weeks() [][]Cell {
	var weeks [][]Cell
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		weeks = append(weeks, g.Cells[i:end])
	}
	return weeks
}

// Month builds the grid for a month, counting entries per day in loc.
func Month(year int, month time.Month, entries []entry.Entry, loc *time.Location) Grid {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.CreatedAt.In(loc).Format(time.DateOnly)]++
	}

	cells := make([]Cell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, month, d, 0, 0, 0, 0, loc).Format(time.DateOnly)
		cells = append(cells, Cell{Date: date, Day: d, Entries: counts[date]})
	}

	return Grid{
		Year:         first.Year(),
		Month:        int(first.Month()),
		Title:        first.Format("January 2006"),
		LeadingBlank: leading,
		Cells:        cells,
	}
}

// EntriesOn returns the entries created on the calendar day of date in loc,
// preserving order.
func EntriesOn(date time.Time, entries []entry.Entry, loc *time.Location) []entry.Entry {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := date.In(loc).Date()

	out := make([]entry.Entry, 0)
	for _, e := range entries {
		ey, em, ed := e.CreatedAt.In(loc).Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

// ParseMonth parses a YYYY-MM value.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
