package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// Stats counts one habit's entries by status bucket.
type Stats struct {
	Habit        string `json:"habit"`
	Total        int    `json:"total"`
	Completed    int    `json:"completed"`
	Exceeded     int    `json:"exceeded"`
	Partial      int    `json:"partial"`
	Skipped      int    `json:"skipped"`
	Unrecognized int    `json:"unrecognized"`
}

// Successes returns completed plus exceeded entries.
func (s Stats) Successes() int {
	return s.Completed + s.Exceeded
}

// CompletionRate returns successes as a percentage of all entries.
func (s Stats) CompletionRate() float64 {
	return percent(s.Successes(), s.Total)
}

func (s *Stats) add(status string) {
	s.Total++
	switch habit.Classify(status) {
	case habit.StatusCompleted:
		s.Completed++
	case habit.StatusExceeded:
		s.Exceeded++
	case habit.StatusPartial:
		s.Partial++
	case habit.StatusSkipped:
		s.Skipped++
	default:
		s.Unrecognized++
	}
}

// HabitStats groups the entries of the trailing window by habit name. A
// non-empty name keeps only habits matching it ignoring case; groups still use
// the exact stored name, so "Run" and "run" are reported separately. Groups are
// returned in first-encountered order.
func HabitStats(entries []habit.Entry, today habit.Day, days int, name string) []Stats {
	window := FilterWindow(entries, today, days)
	if name != "" {
		window = FilterHabit(window, name)
	}

	index := make(map[string]int)
	var out []Stats
	for _, e := range window {
		i, ok := index[e.Habit]
		if !ok {
			i = len(out)
			index[e.Habit] = i
			out = append(out, Stats{Habit: e.Habit})
		}
		out[i].add(e.Status)
	}
	return out
}
