package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/analytics"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weekly habit dashboard",
	Long: `Display a summary of the habit log: totals, the trailing seven-day
completion rate, the most logged habits this week and the latest entries.`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show earned achievement badges",
	Args:  cobra.NoArgs,
	RunE:  runAchievements,
}

var dashboardJSON bool

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardJSON, "json", false, "output as JSON")
}

// dashboardView is the JSON form of a dashboard.
type dashboardView struct {
	analytics.Dashboard
	Recent []entryView `json:"recent"`
}

type entryView struct {
	Date   string `json:"date"`
	Habit  string `json:"habit"`
	Status string `json:"status"`
}

func runDashboard(cmd *cobra.Command, args []string) error {
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

	data := analytics.BuildDashboard(entries, a.today(), analytics.DashboardOptions{
		TopHabits: a.cfg.Display.TopHabits,
		Recent:    a.cfg.Display.RecentEntries,
	})

	if dashboardJSON {
		view := dashboardView{Dashboard: data, Recent: []entryView{}}
		for _, e := range data.Recent {
			view.Recent = append(view.Recent, entryView{Date: e.DateText, Habit: e.Habit, Status: e.Status})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	printDashboard(w, data, a.cfg.Display.BarWidth)
	return nil
}

func printDashboard(w io.Writer, data analytics.Dashboard, width int) {
	fmt.Fprintln(w, "=== Habitify Dashboard ===")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total entries: %d\n", data.TotalEntries)
	fmt.Fprintf(w, "Unique habits: %d\n", data.UniqueHabits)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Last 7 Days ---")
	if data.WeeklyEntries == 0 {
		fmt.Fprintln(w, "No entries this week.")
	} else {
		fmt.Fprintf(w, "Entries: %d | Successes: %d | Completion: %.1f%%\n",
			data.WeeklyEntries, data.WeeklySuccess, data.WeeklyRate)
		fmt.Fprintln(w, renderProgressBar(data.WeeklySuccess, data.WeeklyEntries, width))
	}
	fmt.Fprintln(w)

	if len(data.TopHabits) > 0 {
		fmt.Fprintln(w, "--- Top Habits ---")
		for i, h := range data.TopHabits {
			fmt.Fprintf(w, "%d. %s (%d)\n", i+1, truncate(h.Habit, 40), h.Count)
		}
		fmt.Fprintln(w)
	}

	if len(data.Recent) > 0 {
		fmt.Fprintln(w, "--- Recent Entries ---")
		for _, e := range data.Recent {
			printEntry(w, e)
		}
		fmt.Fprintln(w)
	}
}

func runAchievements(cmd *cobra.Command, args []string) error {
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

	badges := analytics.Achievements(entries, a.today())
	if len(badges) == 0 {
		fmt.Fprintln(w, "No achievements yet. Keep logging!")
		return nil
	}

	fmt.Fprintln(w, "Achievements:")
	for _, b := range badges {
		fmt.Fprintf(w, "  🏆 %s\n", b.Title)
	}
	return nil
}
