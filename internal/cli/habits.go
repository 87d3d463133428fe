package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/analytics"
	"github.com/swamp-dev/habitify/internal/store"
)

var (
	createDescription string
	createCategory    string
)

var createHabitCmd = &cobra.Command{
	Use:   "create-habit <name>",
	Short: "Register a habit with a description and category",
	Long: `Create-habit stores descriptive metadata for a habit. Logging does not
require it; it only feeds list-habits.

Examples:
  habitify create-habit Reading --description "20 pages" --category mind`,
	Args: cobra.ExactArgs(1),
	RunE: runCreateHabit,
}

var listHabitsCmd = &cobra.Command{
	Use:   "list-habits",
	Short: "List registered habits",
	Args:  cobra.NoArgs,
	RunE:  runListHabits,
}

var removeHabitCmd = &cobra.Command{
	Use:   "remove-habit <name>",
	Short: "Remove a habit's metadata (entries are kept)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemoveHabit,
}

func init() {
	createHabitCmd.Flags().StringVar(&createDescription, "description", "", "habit description")
	createHabitCmd.Flags().StringVar(&createCategory, "category", "general", "habit category")
}

func runCreateHabit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	md, err := store.LoadMetadata(a.paths.Metadata)
	if err != nil {
		return err
	}

	entries, _, err := a.loadEntries()
	if err != nil {
		return err
	}

	h := store.HabitMetadata{
		Name:         args[0],
		Description:  createDescription,
		Category:     createCategory,
		Created:      a.today().String(),
		TotalEntries: len(analytics.FilterHabit(entries, args[0])),
	}
	if err := md.Create(h); err != nil {
		return err
	}
	if err := md.Save(a.paths.Metadata); err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created habit '%s' in category '%s'.\n", h.Name, h.Category)
	return nil
}

func runListHabits(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	md, err := store.LoadMetadata(a.paths.Metadata)
	if err != nil {
		return err
	}
	if len(md) == 0 {
		fmt.Fprintln(w, "No habits created. Use 'habitify create-habit <name>' to add one.")
		return nil
	}

	for _, h := range md.List() {
		fmt.Fprintf(w, "%s [%s] created %s, %s at creation\n",
			h.Name, h.Category, h.Created, plural(h.TotalEntries, "entry", "entries"))
		if h.Description != "" {
			fmt.Fprintf(w, "  %s\n", h.Description)
		}
	}
	return nil
}

func runRemoveHabit(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	md, err := store.LoadMetadata(a.paths.Metadata)
	if err != nil {
		return err
	}
	if err := md.Remove(args[0]); err != nil {
		return err
	}
	if err := md.Save(a.paths.Metadata); err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed habit '%s'. Logged entries were kept.\n", args[0])
	return nil
}
