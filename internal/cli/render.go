package cli

import (
	"fmt"
	"io"

	"github.com/swamp-dev/habitify/internal/analytics"
	"github.com/swamp-dev/habitify/internal/habit"
)

const emptyLogMessage = "No habits logged yet. Use 'habitify log <habit>' to get started."

func renderProgressBar(successes, days, width int) string {
	return "[" + analytics.RenderProgressBar(successes, days, width) + "]"
}

func statusIcon(status string) string {
	switch habit.Classify(status) {
	case habit.StatusCompleted:
		return "✓"
	case habit.StatusExceeded:
		return "★"
	case habit.StatusPartial:
		return "◐"
	case habit.StatusSkipped:
		return "✗"
	default:
		return "○"
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}

func printEntry(w io.Writer, e habit.Entry) {
	fmt.Fprintf(w, "%s %s - %s: %s\n", statusIcon(e.Status), e.DateText, e.Habit, e.Status)
}
