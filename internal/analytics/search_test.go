package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swamp-dev/habitify/internal/habit"
)

func TestSearch(t *testing.T) {
	entries := []habit.Entry{
		entry(0, "Morning Run", "Completed"),
		entry(1, "Reading", "Skipped"),
		entry(2, "Evening run", "skipped"),
		entry(9, "Run", "Completed"),
	}

	names := func(es []habit.Entry) []string {
		var out []string
		for _, e := range es {
			out = append(out, e.Habit)
		}
		return out
	}

	assert.Equal(t, []string{"Morning Run", "Evening run", "Run"}, names(Search(entries, SearchQuery{Text: "RUN"})))
	assert.Equal(t, []string{"Reading", "Evening run"}, names(Search(entries, SearchQuery{Status: "Skipped"})))
	assert.Equal(t, []string{"Morning Run", "Evening run"}, names(Search(entries, SearchQuery{Text: "run", From: today.AddDays(-5)})))
	assert.Equal(t, []string{"Run"}, names(Search(entries, SearchQuery{To: today.AddDays(-3)})))
	assert.Empty(t, Search(entries, SearchQuery{Text: "swim"}))
}

func TestGoalStatus(t *testing.T) {
	entries := []habit.Entry{
		entry(0, "Water", "Completed"),
		entry(0, "water", "Completed"),
		entry(0, "Water", "Skipped"),
		entry(1, "Water", "Completed"),
		entry(0, "Run", "Completed"),
	}
	goals := map[string]int{"Water": 3, "Run": 1}

	got := GoalStatus(entries, goals, []string{"Run", "Water"}, today)
	assert.Equal(t, []GoalProgress{
		{Habit: "Run", Goal: 1, Today: 1, Met: true},
		{Habit: "Water", Goal: 3, Today: 2, Met: false},
	}, got)
}
