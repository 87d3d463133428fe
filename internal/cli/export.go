package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/archive"
	"github.com/swamp-dev/habitify/internal/habit"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the habit log as CSV, JSON or SQLite",
	Long: `Export writes every entry in log order.

CSV and JSON go to stdout unless --output is given. The sqlite format appends
a snapshot to the database at --output, creating it if needed.

Examples:
  habitify export --format json > habits.json
  habitify export --format csv --output backup.csv
  habitify export --format sqlite --output habits.db`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "csv", "export format (csv, json, sqlite)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (required for sqlite)")
}

func runExport(cmd *cobra.Command, args []string) error {
	switch exportFormat {
	case "csv", "json":
	case "sqlite":
		if exportOutput == "" {
			return fmt.Errorf("--output is required for the sqlite format")
		}
	default:
		return fmt.Errorf("unsupported format: %s (must be csv, json, or sqlite)", exportFormat)
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

	if exportFormat == "sqlite" {
		return exportSQLite(w, a, entries)
	}

	if exportOutput == "" {
		return writeEntries(w, entries)
	}

	f, err := os.Create(exportOutput)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	if err := writeEntries(f, entries); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing export file: %w", err)
	}

	fmt.Fprintf(w, "Exported %s to %s\n", plural(len(entries), "entry", "entries"), exportOutput)
	return nil
}

func writeEntries(w io.Writer, entries []habit.Entry) error {
	var err error
	if exportFormat == "json" {
		err = writeJSON(w, entries)
	} else {
		err = writeCSV(w, entries)
	}
	if err != nil {
		return fmt.Errorf("exporting %s: %w", exportFormat, err)
	}
	return nil
}

func writeCSV(w io.Writer, entries []habit.Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "habit", "status"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := cw.Write(e.Record()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, entries []habit.Entry) error {
	out := make([]entryView, 0, len(entries))
	for _, e := range entries {
		rec := e.Record()
		out = append(out, entryView{Date: rec[0], Habit: rec[1], Status: rec[2]})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportSQLite(w io.Writer, a *app, entries []habit.Entry) error {
	db, err := archive.Open(exportOutput)
	if err != nil {
		return err
	}
	defer db.Close()

	snap, err := db.SaveSnapshot(entries, a.paths.EntryLog, now())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	counts, err := db.HabitCounts(snap.ID)
	if err != nil {
		return fmt.Errorf("summarizing snapshot: %w", err)
	}

	fmt.Fprintf(w, "Exported %s to %s (snapshot %s)\n",
		plural(snap.EntryCount, "entry", "entries"), exportOutput, snap.ID)
	for _, c := range counts {
		fmt.Fprintf(w, "  %s: %d (%d successes)\n", c.Habit, c.Total, c.Successes)
	}
	return nil
}
