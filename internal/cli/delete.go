package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/store"
)

var deleteHabitCmd = &cobra.Command{
	Use:   "delete-habit <habit>",
	Short: "Delete every entry for a habit",
	Long: `Delete-habit removes all entries whose habit name matches exactly,
including case. Other entries keep their order.

Examples:
  habitify delete-habit Exercise`,
	Args: cobra.ExactArgs(1),
	RunE: runDeleteHabit,
}

func runDeleteHabit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	removed, err := a.store.DeleteByHabit(args[0])
	if errors.Is(err, store.ErrLogNotFound) {
		fmt.Fprintln(w, emptyLogMessage)
		return nil
	}
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}

	if removed == 0 {
		fmt.Fprintf(w, "No entries found for '%s'.\n", args[0])
		return nil
	}
	fmt.Fprintf(w, "Deleted %s for '%s'.\n", plural(removed, "entry", "entries"), args[0])
	return nil
}
