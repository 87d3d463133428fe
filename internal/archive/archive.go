// Package archive exports snapshots of the habit log into a SQLite database
// for ad-hoc querying.
package archive

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/swamp-dev/habitify/internal/habit"
)

//go:embed schema.sql
var schemaSQL string

const currentSchemaVersion = 1

// Archive is a SQLite database of log snapshots.
type Archive struct {
	db   *sql.DB
	path string
}

// Open opens or creates a SQLite database at path and runs migrations.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	a := &Archive{db: db, path: path}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Path returns the database file location.
func (a *Archive) Path() string {
	return a.path
}

// migrate applies the schema if not already at the current version.
func (a *Archive) migrate() error {
	var name string
	err := a.db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		if _, err := a.db.Exec(schemaSQL); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
		_, err = a.db.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
		return err
	}
	if err != nil {
		return fmt.Errorf("checking schema version: %w", err)
	}

	var version int
	if err := a.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	if version < currentSchemaVersion {
		return fmt.Errorf("schema version %d is older than %d", version, currentSchemaVersion)
	}

	return nil
}

// Snapshot is one export of the habit log.
type Snapshot struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	Source     string    `json:"source"`
	EntryCount int       `json:"entry_count"`
}

// SaveSnapshot stores entries in log order under a new snapshot.
func (a *Archive) SaveSnapshot(entries []habit.Entry, source string, now time.Time) (*Snapshot, error) {
	snap := &Snapshot{
		ID:         uuid.NewString(),
		CreatedAt:  now.UTC().Truncate(time.Second),
		Source:     source,
		EntryCount: len(entries),
	}

	tx, err := a.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO snapshots (id, created_at, source, entry_count) VALUES (?, ?, ?, ?)",
		snap.ID, snap.CreatedAt.Format(time.RFC3339), snap.Source, snap.EntryCount,
	); err != nil {
		return nil, fmt.Errorf("creating snapshot: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO entries (snapshot_id, seq, date, habit, status, success) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return nil, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		rec := e.Record()
		success := 0
		if e.IsSuccess() {
			success = 1
		}
		if _, err := stmt.Exec(snap.ID, i, rec[0], rec[1], rec[2], success); err != nil {
			return nil, fmt.Errorf("inserting entry %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing snapshot: %w", err)
	}
	return snap, nil
}

// Snapshots returns all snapshots, newest first.
func (a *Archive) Snapshots() ([]*Snapshot, error) {
	rows, err := a.db.Query(
		"SELECT id, created_at, source, entry_count FROM snapshots ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// LatestSnapshot returns the most recent snapshot.
func (a *Archive) LatestSnapshot() (*Snapshot, error) {
	row := a.db.QueryRow(
		"SELECT id, created_at, source, entry_count FROM snapshots ORDER BY created_at DESC, rowid DESC LIMIT 1",
	)
	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no snapshots found")
	}
	return s, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(r scanner) (*Snapshot, error) {
	s := &Snapshot{}
	var created string
	if err := r.Scan(&s.ID, &created, &s.Source, &s.EntryCount); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot time %q: %w", created, err)
	}
	s.CreatedAt = t
	return s, nil
}

// Entries returns a snapshot's entries in their original log order.
func (a *Archive) Entries(snapshotID string) ([]habit.Entry, error) {
	rows, err := a.db.Query(
		"SELECT date, habit, status FROM entries WHERE snapshot_id = ? ORDER BY seq", snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []habit.Entry
	for rows.Next() {
		var e habit.Entry
		if err := rows.Scan(&e.DateText, &e.Habit, &e.Status); err != nil {
			return nil, err
		}
		if d, err := habit.ParseDay(e.DateText); err == nil {
			e.Date = d
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HabitCount is a per-habit aggregate computed in SQL.
type HabitCount struct {
	Habit     string `json:"habit"`
	Total     int    `json:"total"`
	Successes int    `json:"successes"`
}

// HabitCounts aggregates a snapshot by exact habit name, most logged first.
func (a *Archive) HabitCounts(snapshotID string) ([]HabitCount, error) {
	rows, err := a.db.Query(
		`SELECT habit, COUNT(*), SUM(success)
		 FROM entries WHERE snapshot_id = ?
		 GROUP BY habit
		 ORDER BY COUNT(*) DESC, MIN(seq)`, snapshotID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []HabitCount
	for rows.Next() {
		var c HabitCount
		if err := rows.Scan(&c.Habit, &c.Total, &c.Successes); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
