package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/swamp-dev/habitify/internal/analytics"
	"github.com/swamp-dev/habitify/internal/habit"
)

func TestPrintDashboardGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	data := analytics.Dashboard{
		TotalEntries:  12,
		UniqueHabits:  3,
		WeeklyEntries: 4,
		WeeklySuccess: 3,
		WeeklyRate:    75,
		TopHabits: []analytics.HabitCount{
			{Habit: "Exercise", Count: 2},
			{Habit: "Reading", Count: 1},
			{Habit: "Water", Count: 1},
		},
		Recent: []habit.Entry{
			habit.NewEntry(habit.Date(2026, 10, 18), "Exercise", "Completed"),
			habit.NewEntry(habit.Date(2026, 10, 17), "Reading", "Partial"),
		},
	}

	var buf bytes.Buffer
	printDashboard(&buf, data, 20)
	g.Assert(t, "dashboard", buf.Bytes())
}

func TestPrintDashboardQuietWeekGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	data := analytics.Dashboard{
		TotalEntries: 1,
		UniqueHabits: 1,
		Recent: []habit.Entry{
			habit.NewEntry(habit.Date(2026, 9, 1), "Swim", "Skipped"),
		},
	}

	var buf bytes.Buffer
	printDashboard(&buf, data, 20)
	g.Assert(t, "dashboard_quiet_week", buf.Bytes())
}

func TestPrintStatsGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	stats := []analytics.Stats{
		{Habit: "Exercise", Total: 4, Completed: 2, Exceeded: 1, Partial: 1},
		{Habit: "Reading", Total: 2, Skipped: 1, Unrecognized: 1},
	}

	var buf bytes.Buffer
	printStats(&buf, stats, 30, "")
	g.Assert(t, "stats", buf.Bytes())
}

func TestPrintProgressGolden(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	var buf bytes.Buffer
	printProgress(&buf, analytics.ProgressReport{Habit: "Water", Days: 7, Successes: 9, Percent: 9.0 / 7 * 100}, 14)
	g.Assert(t, "progress_over_full", buf.Bytes())
}
