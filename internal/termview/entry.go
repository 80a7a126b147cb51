package termview

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/quill/internal/domain/entry"
)

// Entry renders a single entry with its metadata above the raw markdown.
func Entry(e entry.Entry, loc *time.Location, width int) string {
	if loc == nil {
		loc = time.Local
	}
	if width < 40 {
		width = 40
	}

	meta := []string{mutedStyle.Render(e.CreatedAt.In(loc).Format("Mon, Jan 2 2006 15:04"))}
	if e.Mood != nil {
		meta = append(meta, dot(e.Mood.Color)+" "+e.Mood.Emoji+" "+e.Mood.Name)
	}
	if names := e.TagNames(); len(names) > 0 {
		tags := make([]string, len(names))
		for i, n := range names {
			tags[i] = tagStyle.Render("#" + n)
		}
		meta = append(meta, strings.Join(tags, " "))
	}

	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(e.Title),
		strings.Join(meta, mutedStyle.Render("  ·  ")),
		"",
		e.Content,
	))
}
