package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// WeekDays is the trailing window used by the dashboard and achievements.
const WeekDays = 7

// HabitCount is a habit name with its entry count.
type HabitCount struct {
	Habit string `json:"habit"`
	Count int    `json:"count"`
}

// Dashboard summarizes the whole log and the trailing week.
type Dashboard struct {
	TotalEntries  int           `json:"total_entries"`
	UniqueHabits  int           `json:"unique_habits"`
	WeeklyEntries int           `json:"weekly_entries"`
	WeeklySuccess int           `json:"weekly_successes"`
	WeeklyRate    float64       `json:"weekly_completion_rate"`
	TopHabits     []HabitCount  `json:"top_habits"`
	Recent        []habit.Entry `json:"-"`
}

// DashboardOptions bounds the list sections of a dashboard.
type DashboardOptions struct {
	TopHabits int
	Recent    int
}

// BuildDashboard computes the dashboard summary. Unique habits are counted by
// exact name.
func BuildDashboard(entries []habit.Entry, today habit.Day, opts DashboardOptions) Dashboard {
	week := FilterWindow(entries, today, WeekDays)

	d := Dashboard{
		TotalEntries:  len(entries),
		UniqueHabits:  countUniqueHabits(entries),
		WeeklyEntries: len(week),
		WeeklySuccess: countSuccesses(week),
		TopHabits:     TopHabits(week, opts.TopHabits),
	}
	d.WeeklyRate = percent(d.WeeklySuccess, d.WeeklyEntries)

	recent := SortByDateDesc(entries)
	if len(recent) > opts.Recent {
		recent = recent[:opts.Recent]
	}
	d.Recent = recent

	return d
}

// TopHabits returns the n most logged habit names. Ties keep the order in
// which the habits first appear.
func TopHabits(entries []habit.Entry, n int) []HabitCount {
	index := make(map[string]int)
	counts := []HabitCount{}
	for _, e := range entries {
		i, ok := index[e.Habit]
		if !ok {
			i = len(counts)
			index[e.Habit] = i
			counts = append(counts, HabitCount{Habit: e.Habit})
		}
		counts[i].Count++
	}

	// Insertion sort keeps first-encountered order for equal counts.
	for i := 1; i < len(counts); i++ {
		for j := i; j > 0 && counts[j].Count > counts[j-1].Count; j-- {
			counts[j], counts[j-1] = counts[j-1], counts[j]
		}
	}

	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func countUniqueHabits(entries []habit.Entry) int {
	seen := make(map[string]struct{})
	for _, e := range entries {
		seen[e.Habit] = struct{}{}
	}
	return len(seen)
}
