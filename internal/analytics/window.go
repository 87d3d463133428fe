// Package analytics derives streaks, completion rates, dashboards and
// achievements from a snapshot of habit entries.
//
// Every function is pure: it takes the entries read from the store plus an
// explicit "today" and never touches the filesystem.
package analytics

import (
	"sort"

	"github.com/swamp-dev/habitify/internal/habit"
)

// FilterWindow keeps entries dated on or after today minus days. Entries dated
// after today are kept; entries without a parseable date are dropped.
func FilterWindow(entries []habit.Entry, today habit.Day, days int) []habit.Entry {
	var out []habit.Entry
	for _, e := range entries {
		if e.Date.IsZero() || today.DaysSince(e.Date) > days {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterHabit keeps entries whose habit name matches name ignoring case.
func FilterHabit(entries []habit.Entry, name string) []habit.Entry {
	var out []habit.Entry
	for _, e := range entries {
		if habit.SameName(e.Habit, name) {
			out = append(out, e)
		}
	}
	return out
}

// SortByDateDesc returns a copy of entries ordered newest first. Entries on the
// same date keep their log order.
func SortByDateDesc(entries []habit.Entry) []habit.Entry {
	out := make([]habit.Entry, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

func countSuccesses(entries []habit.Entry) int {
	n := 0
	for _, e := range entries {
		if e.IsSuccess() {
			n++
		}
	}
	return n
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
