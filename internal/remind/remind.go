// Package remind nudges the writer when today's entry is missing.
package remind

import (
	"fmt"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/rpggio/quill/internal/stats"
)

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(title, message string) error
}

// DesktopNotifier shows a desktop notification with a sound.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	beeep.AppName = "quill"
	return beeep.Alert(title, message, "")
}

// Reminder is the notification to send, if any.
type Reminder struct {
	Title   string
	Message string
}

// Check decides whether a reminder is due at now. No reminder is due once
// something was written today.
func Check(snap stats.Snapshot, now time.Time, loc *time.Location) (Reminder, bool) {
	if loc == nil {
		loc = time.Local
	}
	if snap.LastEntryDate == "" {
		return Reminder{Title: "quill", Message: "Start your journal with a first entry today."}, true
	}

	last, err := time.ParseInLocation(time.DateOnly, snap.LastEntryDate, loc)
	if err != nil {
		return Reminder{}, false
	}
	y, m, d := now.In(loc).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)
	gap := int(today.Sub(last).Hours()/24 + 0.5)

	switch {
	case gap <= 0:
		return Reminder{}, false
	case snap.CurrentStreak > 0:
		return Reminder{
			Title:   "Keep your streak going",
			Message: fmt.Sprintf("You have written %s in a row. Add today's entry.", dayCount(snap.CurrentStreak)),
		}, true
	default:
		return Reminder{
			Title:   "Time to write",
			Message: fmt.Sprintf("It has been %s since your last entry.", dayCount(gap)),
		}, true
	}
}

// Run checks snap and notifies when a reminder is due. It reports whether a
// notification was sent.
func Run(n Notifier, snap stats.Snapshot, now time.Time, loc *time.Location) (bool, error) {
	r, due := Check(snap, now, loc)
	if !due {
		return false, nil
	}
	if err := n.Notify(r.Title, r.Message); err != nil {
		return false, fmt.Errorf("send reminder: %w", err)
	}
	return true, nil
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
