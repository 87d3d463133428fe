package analytics

import (
	"strings"

	"github.com/swamp-dev/habitify/internal/habit"
)

const (
	// DefaultBarWidth is the progress bar width in glyphs.
	DefaultBarWidth = 30

	barFilled = "█"
	barEmpty  = "░"
)

// ProgressReport is a habit's success count over a day window.
type ProgressReport struct {
	Habit     string  `json:"habit"`
	Days      int     `json:"days"`
	Successes int     `json:"successes"`
	Percent   float64 `json:"percent"`
}

// Progress counts successful entries for name in the trailing window. Every
// success entry counts, so duplicate same-day logging can push Percent above
// 100.
func Progress(entries []habit.Entry, name string, today habit.Day, days int) ProgressReport {
	matched := FilterHabit(FilterWindow(entries, today, days), name)
	successes := countSuccesses(matched)
	return ProgressReport{
		Habit:     name,
		Days:      days,
		Successes: successes,
		Percent:   percent(successes, days),
	}
}

// RenderProgressBar draws floor(width*successes/days) filled glyphs followed
// by empty ones. The bar is clamped to width; the caller prints the unclamped
// percentage.
func RenderProgressBar(successes, days, width int) string {
	filled := 0
	if days > 0 {
		filled = width * successes / days
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}
