// Package termview renders journal data for the terminal.
package termview

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/quill/internal/stats"
)

// MaxChartMonths bounds the number of bars in the monthly chart.
const MaxChartMonths = 12

// Stats renders a snapshot as a bordered panel of the given width.
func Stats(snap stats.Snapshot, width int) string {
	if width < 40 {
		width = 40
	}
	inner := width - 6

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Journal"), "  ",
		mutedStyle.Render(fmt.Sprintf("%d entries", snap.TotalEntries)),
	)
	streaks := fmt.Sprintf("%s current streak   %s longest streak",
		streakStyle.Render(days(snap.CurrentStreak)),
		streakStyle.Render(days(snap.LongestStreak)),
	)
	if snap.LastEntryDate != "" {
		streaks += mutedStyle.Render("   last entry " + snap.LastEntryDate)
	}

	sections := []string{header, streaks, ""}
	if snap.TotalEntries == 0 {
		sections = append(sections, mutedStyle.Render("No entries yet. Run `quill write` to add one."))
		return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
	}

	sections = append(sections,
		headingStyle.Render("Entries per month"), MonthChart(snap.EntriesByMonth, inner, 10), "",
		headingStyle.Render("Moods"), moodLines(snap.MoodDistribution), "",
		headingStyle.Render("Top tags"), tagLines(snap.TopTags),
	)
	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// MonthChart draws the most recent months as a bar chart.
func MonthChart(months []stats.MonthCount, width, height int) string {
	if len(months) > MaxChartMonths {
		months = months[len(months)-MaxChartMonths:]
	}

	chart := barchart.New(width, height)
	bars := make([]barchart.BarData, 0, len(months))
	for _, m := range months {
		bars = append(bars, barchart.BarData{
			Label: monthLabel(m.Month),
			Values: []barchart.BarValue{{
				Name:  m.Month,
				Value: float64(m.Count),
				Style: lipgloss.NewStyle().Foreground(colorPrimary),
			}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

func moodLines(moods []stats.MoodCount) string {
	if len(moods) == 0 {
		return mutedStyle.Render("  No moods defined")
	}
	rows := make([]string, 0, len(moods))
	for _, m := range moods {
		name := m.Mood
		if m.Emoji != "" {
			name = m.Emoji + " " + name
		}
		rows = append(rows, fmt.Sprintf("  %s %s %4d", dot(m.Color), padRight(name, nameWidth), m.Count))
	}
	return strings.Join(rows, "\n")
}

func tagLines(tags []stats.TagCount) string {
	if len(tags) == 0 {
		return mutedStyle.Render("  No tags yet")
	}
	rows := make([]string, 0, len(tags))
	for _, t := range tags {
		rows = append(rows, fmt.Sprintf("  %s %s %4d", dot(t.Color), padRight(tagStyle.Render("#"+t.Tag), nameWidth), t.Count))
	}
	return strings.Join(rows, "\n")
}

const nameWidth = 18

// padRight pads s with spaces to w terminal cells, ignoring ANSI styling.
func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	return t.Format("Jan")
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
