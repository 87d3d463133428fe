package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/analytics"
)

var (
	statsHabit string
	statsDays  int

	progressDays int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics per habit",
	Long: `Stats counts entries per habit over a trailing window and reports the
completion rate, where Completed and Exceeded count as successes.

Examples:
  habitify stats
  habitify stats --habit reading --days 7`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var streakCmd = &cobra.Command{
	Use:   "streak <habit>",
	Short: "Show the current streak for a habit",
	Long: `Streak counts consecutive successful days ending today or yesterday.

Examples:
  habitify streak Exercise`,
	Args: cobra.ExactArgs(1),
	RunE: runStreak,
}

var progressCmd = &cobra.Command{
	Use:   "progress <habit>",
	Short: "Show a progress bar for a habit",
	Long: `Progress draws a bar of successful entries against the number of days
in the window.

Examples:
  habitify progress Reading
  habitify progress Reading --days 7`,
	Args: cobra.ExactArgs(1),
	RunE: runProgress,
}

func init() {
	statsCmd.Flags().StringVar(&statsHabit, "habit", "", "only this habit (case-insensitive)")
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 30, "trailing window in days")
	progressCmd.Flags().IntVarP(&progressDays, "days", "d", 30, "trailing window in days")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	entries, ok, err := a.loadEntries()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, emptyLogMessage)
		return nil
	}

	stats := analytics.HabitStats(entries, a.today(), statsDays, statsHabit)
	printStats(w, stats, statsDays, statsHabit)
	return nil
}

func printStats(w io.Writer, stats []analytics.Stats, days int, filter string) {
	if len(stats) == 0 {
		if filter != "" {
			fmt.Fprintf(w, "No entries for '%s' in the last %s.\n", filter, plural(days, "day", "days"))
		} else {
			fmt.Fprintf(w, "No entries in the last %s.\n", plural(days, "day", "days"))
		}
		return
	}

	fmt.Fprintf(w, "Habit statistics (last %s)\n", plural(days, "day", "days"))
	for _, s := range stats {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s\n", s.Habit)
		fmt.Fprintf(w, "  Total: %d | Completed: %d | Exceeded: %d | Partial: %d | Skipped: %d | Other: %d\n",
			s.Total, s.Completed, s.Exceeded, s.Partial, s.Skipped, s.Unrecognized)
		fmt.Fprintf(w, "  Completion rate: %.1f%%\n", s.CompletionRate())
	}
}

func runStreak(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	entries, ok, err := a.loadEntries()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, emptyLogMessage)
		return nil
	}

	name := args[0]
	if len(analytics.FilterHabit(entries, name)) == 0 {
		fmt.Fprintf(w, "No entries found for '%s'.\n", name)
		return nil
	}

	current := analytics.Streak(entries, name, a.today())
	longest := analytics.LongestStreak(entries, name)

	fmt.Fprintf(w, "Current streak for '%s': %s\n", name, plural(current, "day", "days"))
	fmt.Fprintf(w, "Longest streak: %s\n", plural(longest, "day", "days"))
	if current == 0 {
		fmt.Fprintln(w, "Log a success today to start a new streak.")
	}
	return nil
}

func runProgress(cmd *cobra.Command, args []string) error {
	if progressDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	entries, ok, err := a.loadEntries()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w, emptyLogMessage)
		return nil
	}

	name := args[0]
	if len(analytics.FilterHabit(entries, name)) == 0 {
		fmt.Fprintf(w, "No entries found for '%s'.\n", name)
		return nil
	}

	p := analytics.Progress(entries, name, a.today(), progressDays)
	printProgress(w, p, a.cfg.Display.BarWidth)
	return nil
}

func printProgress(w io.Writer, p analytics.ProgressReport, width int) {
	fmt.Fprintf(w, "Progress for '%s' (last %s)\n", p.Habit, plural(p.Days, "day", "days"))
	fmt.Fprintf(w, "%s %.1f%% (%d/%d)\n", renderProgressBar(p.Successes, p.Days, width), p.Percent, p.Successes, p.Days)
}
