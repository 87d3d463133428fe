package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/habit"
)

var (
	logStatus     string
	bulkLogStatus string
	bulkLogDays   int
)

var logCmd = &cobra.Command{
	Use:   "log <habit>",
	Short: "Log a habit for today",
	Long: `Log appends one entry dated today to the habit log.

Recognized statuses are Completed, Exceeded, Partial and Skipped; any other
text is stored as-is.

Examples:
  habitify log Exercise
  habitify log Reading --status Partial`,
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

var bulkLogCmd = &cobra.Command{
	Use:   "bulk-log <habit>",
	Short: "Log a habit for each of the last N days",
	Long: `Bulk-log appends one entry per day for the last N days, ending today,
oldest first. Existing entries are left alone, so days may end up logged twice.

Examples:
  habitify bulk-log Meditation --days 7
  habitify bulk-log Running --days 3 --status Exceeded`,
	Args: cobra.ExactArgs(1),
	RunE: runBulkLog,
}

func init() {
	logCmd.Flags().StringVarP(&logStatus, "status", "s", string(habit.StatusCompleted), "status of the habit")
	bulkLogCmd.Flags().StringVarP(&bulkLogStatus, "status", "s", string(habit.StatusCompleted), "status for every entry")
	bulkLogCmd.Flags().IntVarP(&bulkLogDays, "days", "d", 7, "number of days to log, ending today")
}

func runLog(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	entry, err := a.store.Append(args[0], logStatus)
	if err != nil {
		return err
	}

	logger.Debug("logged habit", "habit", entry.Habit, "status", entry.Status, "date", entry.DateText)
	fmt.Fprintf(cmd.OutOrStdout(), "Habit '%s' logged with status: %s\n", entry.Habit, entry.Status)
	return nil
}

func runBulkLog(cmd *cobra.Command, args []string) error {
	if bulkLogDays < 1 {
		return fmt.Errorf("--days must be at least 1")
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	today := a.today()
	entries := make([]habit.Entry, 0, bulkLogDays)
	for i := bulkLogDays - 1; i >= 0; i-- {
		entries = append(entries, habit.NewEntry(today.AddDays(-i), args[0], bulkLogStatus))
	}

	if err := a.store.AppendEntries(entries); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged %s for '%s' (%s to %s) with status: %s\n",
		plural(len(entries), "entry", "entries"), args[0], entries[0].DateText, today, bulkLogStatus)
	return nil
}
