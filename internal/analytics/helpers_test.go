package analytics

import (
	"time"

	"github.com/swamp-dev/habitify/internal/habit"
)

var today = habit.Date(2026, time.October, 18)

func entry(daysAgo int, name, status string) habit.Entry {
	return habit.NewEntry(today.AddDays(-daysAgo), name, status)
}
