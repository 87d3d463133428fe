package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swamp-dev/habitify/internal/habit"
)

func TestHabitStatsCompletionRate(t *testing.T) {
	var entries []habit.Entry
	statuses := []string{
		"Completed", "Completed", "Completed", "Completed", "Completed", "Completed",
		"Exceeded", "Exceeded",
		"Skipped", "Skipped",
	}
	for i, s := range statuses {
		entries = append(entries, entry(i*2, "Reading", s))
	}

	stats := HabitStats(entries, today, 30, "")
	require.Len(t, stats, 1)

	s := stats[0]
	assert.Equal(t, 10, s.Total)
	assert.Equal(t, 6, s.Completed)
	assert.Equal(t, 2, s.Exceeded)
	assert.Equal(t, 2, s.Skipped)
	assert.InDelta(t, 80.0, s.CompletionRate(), 1e-9)
}

func TestHabitStatsBuckets(t *testing.T) {
	entries := []habit.Entry{
		entry(1, "Run", "completed"),
		entry(1, "Run", "PARTIAL"),
		entry(2, "Run", "Done"),
		entry(3, "Run", "skipped"),
		entry(40, "Run", "Completed"),
	}

	stats := HabitStats(entries, today, 30, "run")
	require.Len(t, stats, 1)
	assert.Equal(t, Stats{Habit: "Run", Total: 4, Completed: 1, Partial: 1, Skipped: 1, Unrecognized: 1}, stats[0])
	assert.InDelta(t, 25.0, stats[0].CompletionRate(), 1e-9)
}

func TestHabitStatsGroupsByExactName(t *testing.T) {
	entries := []habit.Entry{
		entry(0, "Run", "Completed"),
		entry(0, "Read", "Completed"),
		entry(1, "run", "Skipped"),
	}

	stats := HabitStats(entries, today, 30, "RUN")
	require.Len(t, stats, 2)
	assert.Equal(t, "Run", stats[0].Habit)
	assert.Equal(t, "run", stats[1].Habit)

	all := HabitStats(entries, today, 30, "")
	assert.Len(t, all, 3)
}

func TestHabitStatsEmptyWindow(t *testing.T) {
	entries := []habit.Entry{entry(60, "Run", "Completed")}
	assert.Empty(t, HabitStats(entries, today, 30, ""))
	assert.Empty(t, HabitStats(nil, today, 30, "Run"))
}
