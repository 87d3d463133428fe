package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the habit files into a timestamped backup directory",
	Args:  cobra.NoArgs,
	RunE:  runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore <backup-dir>",
	Short: "Restore the habit files from a backup directory",
	Long: `Restore copies the habit log, goals and metadata found in a backup
directory over the current files.

Examples:
  habitify restore ~/.habitify/backups/backup-20261018-090000`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func runBackup(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	dir, err := store.Backup(a.paths, a.paths.BackupDir, now())
	if err != nil {
		return fmt.Errorf("backing up: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Backup created: %s\n", dir)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	restored, err := store.Restore(a.paths, args[0])
	if err != nil {
		return fmt.Errorf("restoring: %w", err)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Restored %s from %s:\n", plural(len(restored), "file", "files"), args[0])
	for _, p := range restored {
		fmt.Fprintf(w, "  - %s\n", p)
	}
	return nil
}
