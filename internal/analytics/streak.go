package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// Streak returns the current run of consecutive successful days for name,
// ending today or yesterday.
//
// Entries are walked newest first and future-dated entries are skipped. The
// first remaining entry must be a success dated today or yesterday. After that
// each counted entry must be a success dated exactly one day before the last
// counted day. Further entries on an already counted day are passed over, but
// a failing entry on the expected day ends the walk even if a success for that
// day follows it in log order.
func Streak(entries []habit.Entry, name string, today habit.Day) int {
	sorted := SortByDateDesc(FilterHabit(entries, name))

	streak := 0
	var expected habit.Day
	for _, e := range sorted {
		if e.Date.IsZero() || e.Date.After(today) {
			continue
		}

		if streak == 0 {
			recent := e.Date.Equal(today) || e.Date.Equal(today.AddDays(-1))
			if !recent || !e.IsSuccess() {
				return 0
			}
			streak = 1
			expected = e.Date.AddDays(-1)
			continue
		}

		if e.Date.After(expected) {
			continue
		}
		if !e.Date.Equal(expected) || !e.IsSuccess() {
			break
		}
		streak++
		expected = e.Date.AddDays(-1)
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days on which
// name has at least one success.
func LongestStreak(entries []habit.Entry, name string) int {
	days := make(map[habit.Day]bool)
	for _, e := range FilterHabit(entries, name) {
		if !e.Date.IsZero() && e.IsSuccess() {
			days[e.Date] = true
		}
	}

	longest := 0
	for d := range days {
		if days[d.AddDays(-1)] {
			continue
		}
		n := 1
		for days[d.AddDays(n)] {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}
