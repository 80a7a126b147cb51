package stats

import (
	"sort"
	"time"
)

// civilDay is a calendar date with no time or zone.
type civilDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) civilDay {
	y, m, d := t.In(loc).Date()
	return civilDay{year: y, month: m, day: d}
}

// ordinal counts days since the Unix epoch, independent of any zone offset.
func (d civilDay) ordinal() int {
	return int(time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

func (d civilDay) String() string {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC).Format(time.DateOnly)
}

// uniqueDays reduces timestamps to sorted distinct calendar days.
func uniqueDays(times []time.Time, loc *time.Location) []civilDay {
	seen := make(map[civilDay]struct{}, len(times))
	days := make([]civilDay, 0, len(times))
	for _, t := range times {
		d := dayOf(t, loc)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].ordinal() < days[j].ordinal()
	})
	return days
}

// longestStreak returns the longest run of consecutive days.
func longestStreak(days []civilDay) int {
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].ordinal()-days[i-1].ordinal() == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// currentStreak counts the run ending at the most recent day, provided that day
// is within grace days of today in either direction.
func currentStreak(days []civilDay, today civilDay, grace int) int {
	if len(days) == 0 {
		return 0
	}
	last := days[len(days)-1]
	gap := today.ordinal() - last.ordinal()
	if gap < 0 {
		gap = -gap
	}
	if gap > grace {
		return 0
	}

	streak := 1
	for i := len(days) - 1; i > 0; i-- {
		if days[i].ordinal()-days[i-1].ordinal() != 1 {
			break
		}
		streak++
	}
	return streak
}
