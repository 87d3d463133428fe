package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// GoalProgress compares today's successes for a habit with its daily goal.
type GoalProgress struct {
	Habit string `json:"habit"`
	Goal  int    `json:"goal"`
	Today int    `json:"today"`
	Met   bool   `json:"met"`
}

// GoalStatus reports today's progress for every habit with a goal, in the
// order of names. Habit names match ignoring case.
func GoalStatus(entries []habit.Entry, goals map[string]int, names []string, today habit.Day) []GoalProgress {
	out := make([]GoalProgress, 0, len(names))
	for _, name := range names {
		n := 0
		for _, e := range FilterHabit(entries, name) {
			if e.Date.Equal(today) && e.IsSuccess() {
				n++
			}
		}
		goal := goals[name]
		out = append(out, GoalProgress{Habit: name, Goal: goal, Today: n, Met: n >= goal})
	}
	return out
}
