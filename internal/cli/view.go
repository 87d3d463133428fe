package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/analytics"
	"github.com/swamp-dev/habitify/internal/habit"
)

var (
	viewHabit  string
	viewLast   int
	viewSorted bool

	searchStatus string
	searchFrom   string
	searchTo     string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "View logged habits",
	Long: `View lists entries in the order they were logged.

Examples:
  habitify view
  habitify view --habit reading --last 10
  habitify view --sorted`,
	Args: cobra.NoArgs,
	RunE: runView,
}

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search entries by habit name",
	Long: `Search lists entries whose habit name contains the given text, ignoring
case. Results can be narrowed by status and date range.

Examples:
  habitify search run
  habitify search read --status skipped --from 2026-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	viewCmd.Flags().StringVar(&viewHabit, "habit", "", "only show this habit (case-insensitive)")
	viewCmd.Flags().IntVar(&viewLast, "last", 0, "show last N entries")
	viewCmd.Flags().BoolVar(&viewSorted, "sorted", false, "order by date, newest first")

	searchCmd.Flags().StringVar(&searchStatus, "status", "", "only entries with this status")
	searchCmd.Flags().StringVar(&searchFrom, "from", "", "earliest date (YYYY-MM-DD)")
	searchCmd.Flags().StringVar(&searchTo, "to", "", "latest date (YYYY-MM-DD)")
}

func runView(cmd *cobra.Command, args []string) error {
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

	if viewHabit != "" {
		entries = analytics.FilterHabit(entries, viewHabit)
	}
	if viewSorted {
		entries = analytics.SortByDateDesc(entries)
	}
	if viewLast > 0 && len(entries) > viewLast {
		if viewSorted {
			entries = entries[:viewLast]
		} else {
			entries = entries[len(entries)-viewLast:]
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return nil
	}

	for _, e := range entries {
		printEntry(w, e)
	}
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	q := analytics.SearchQuery{Text: args[0], Status: searchStatus}

	var err error
	if searchFrom != "" {
		if q.From, err = habit.ParseDay(searchFrom); err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
	}
	if searchTo != "" {
		if q.To, err = habit.ParseDay(searchTo); err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
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

	results := analytics.Search(entries, q)
	if len(results) == 0 {
		fmt.Fprintf(w, "No entries found matching '%s'.\n", args[0])
		return nil
	}

	fmt.Fprintf(w, "Found %s matching '%s':\n", plural(len(results), "entry", "entries"), args[0])
	for _, e := range results {
		printEntry(w, e)
	}
	return nil
}
