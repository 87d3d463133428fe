package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swamp-dev/habitify/internal/habit"
)

func TestFilterWindow(t *testing.T) {
	entries := []habit.Entry{
		entry(0, "Run", "Completed"),
		entry(7, "Run", "Completed"),
		entry(8, "Run", "Completed"),
		entry(-2, "Run", "Completed"),
		{DateText: "garbage", Habit: "Run", Status: "Completed"},
	}

	got := FilterWindow(entries, today, 7)
	assert.Len(t, got, 3)
	assert.Equal(t, today.AddDays(-7), got[1].Date, "cutoff day is inclusive")
	assert.Equal(t, today.AddDays(2), got[2].Date, "future entries are kept")
}

func TestFilterHabitIgnoresCase(t *testing.T) {
	entries := []habit.Entry{
		entry(0, "Run", "Completed"),
		entry(0, "RUN", "Skipped"),
		entry(0, "Running", "Completed"),
	}
	assert.Len(t, FilterHabit(entries, "run"), 2)
}

func TestSortByDateDescIsStable(t *testing.T) {
	entries := []habit.Entry{
		entry(2, "A", "Completed"),
		entry(0, "B", "Completed"),
		entry(2, "C", "Completed"),
		entry(0, "D", "Completed"),
	}

	sorted := SortByDateDesc(entries)
	var names []string
	for _, e := range sorted {
		names = append(names, e.Habit)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
	assert.Equal(t, "A", entries[0].Habit, "input must not be reordered")
}
