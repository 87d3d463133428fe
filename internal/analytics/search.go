package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// SearchQuery filters entries. Zero fields match everything.
type SearchQuery struct {
	Text   string // substring of the habit name, case-insensitive
	Status string // exact status, case-insensitive
	From   habit.Day
	To     habit.Day
}

// Search returns matching entries in log order.
func Search(entries []habit.Entry, q SearchQuery) []habit.Entry {
	var out []habit.Entry
	for _, e := range entries {
		if q.Text != "" && !habit.ContainsName(e.Habit, q.Text) {
			continue
		}
		if q.Status != "" && !habit.SameName(e.Status, q.Status) {
			continue
		}
		if !q.From.IsZero() && (e.Date.IsZero() || e.Date.Before(q.From)) {
			continue
		}
		if !q.To.IsZero() && (e.Date.IsZero() || e.Date.After(q.To)) {
			continue
		}
		out = append(out, e)
	}
	return out
}
