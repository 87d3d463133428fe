package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/analytics"
	"github.com/swamp-dev/habitify/internal/store"
)

var goalCmd = &cobra.Command{
	Use:   "goal <habit> <per-day>",
	Short: "Set a daily goal for a habit",
	Long: `Goal records how many successful entries per day you aim for.

Examples:
  habitify goal Water 8`,
	Args: cobra.ExactArgs(2),
	RunE: runGoal,
}

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Show today's progress against daily goals",
	Args:  cobra.NoArgs,
	RunE:  runGoals,
}

func runGoal(cmd *cobra.Command, args []string) error {
	perDay, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("goal must be a whole number: %q", args[1])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	goals, err := store.LoadGoals(a.paths.Goals)
	if err != nil {
		return err
	}
	if err := goals.Set(args[0], perDay); err != nil {
		return err
	}
	if err := goals.Save(a.paths.Goals); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Goal for '%s' set to %d per day.\n", args[0], perDay)
	return nil
}

func runGoals(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	goals, err := store.LoadGoals(a.paths.Goals)
	if err != nil {
		return err
	}
	if len(goals) == 0 {
		fmt.Fprintln(w, "No goals set. Use 'habitify goal <habit> <per-day>' to add one.")
		return nil
	}

	entries, _, err := a.loadEntries()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Goals for %s:\n", a.today())
	for _, g := range analytics.GoalStatus(entries, goals, goals.Names(), a.today()) {
		mark := " "
		if g.Met {
			mark = "✓"
		}
		fmt.Fprintf(w, "  [%s] %s: %d/%d\n", mark, g.Habit, g.Today, g.Goal)
	}
	return nil
}
