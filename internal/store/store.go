// Package store provides flat-file persistence for habit entries, goals and
// habit metadata.
//
// The entry log is a headerless CSV file of (date, habit, status) rows kept
// in append order. Files are not locked: two processes writing at once race
// and the last writer wins.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/swamp-dev/habitify/internal/habit"
)

var (
	// ErrLogNotFound is returned when the entry log does not exist.
	ErrLogNotFound = errors.New("habit log not found")
	// ErrMalformedRow is matched by MalformedRowError.
	ErrMalformedRow = errors.New("malformed habit log row")
	// ErrWrite wraps I/O failures while writing the entry log.
	ErrWrite = errors.New("writing habit log")
)

// MalformedRowError reports a row with fewer than three fields.
type MalformedRowError struct {
	Line   int
	Fields int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("malformed habit log row at line %d: expected 3 fields, got %d", e.Line, e.Fields)
}

// Is makes errors.Is(err, ErrMalformedRow) match.
func (e *MalformedRowError) Is(target error) bool {
	return target == ErrMalformedRow
}

// Store is the CSV-backed entry log.
type Store struct {
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a store for the log at path. The file is not touched until the
// first read or write.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the entry log location.
func (s *Store) Path() string {
	return s.path
}

// Today returns the store's current calendar date.
func (s *Store) Today() habit.Day {
	return habit.DayOf(s.now())
}

// Exists reports whether the entry log file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Init creates an empty entry log if none exists.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %w", ErrWrite, err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return f.Close()
}

// Append writes one entry dated today to the end of the log.
func (s *Store) Append(name, status string) (habit.Entry, error) {
	entry := habit.NewEntry(s.Today(), name, status)
	if err := s.AppendEntries([]habit.Entry{entry}); err != nil {
		return habit.Entry{}, err
	}
	return entry, nil
}

// AppendEntries writes entries to the end of the log in slice order.
func (s *Store) AppendEntries(entries []habit.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: creating data directory: %w", ErrWrite, err)
	}

	file, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	w := csv.NewWriter(file)
	for _, e := range entries {
		if err := w.Write(e.Record()); err != nil {
			file.Close()
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		file.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	s.logger.Debug("appended entries", "path", s.path, "count", len(entries))
	return nil
}

// ReadAll returns every entry in on-disk order.
func (s *Store) ReadAll() ([]habit.Entry, error) {
	rows, err := s.readRows()
	if err != nil {
		return nil, err
	}

	entries := make([]habit.Entry, 0, len(rows))
	for _, r := range rows {
		if r.fields < 3 {
			return nil, &MalformedRowError{Line: r.line, Fields: r.fields}
		}
		entries = append(entries, r.entry)
	}
	return entries, nil
}

// DeleteByHabit removes every entry whose habit field equals name exactly and
// returns how many were removed. The log is replaced atomically.
func (s *Store) DeleteByHabit(name string) (int, error) {
	rows, err := s.readRows()
	if err != nil {
		return 0, err
	}

	kept := make([][]string, 0, len(rows))
	for _, r := range rows {
		if r.fields < 3 {
			return 0, &MalformedRowError{Line: r.line, Fields: r.fields}
		}
		if r.entry.Habit != name {
			kept = append(kept, r.record)
		}
	}

	err = writeFileAtomic(s.path, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		for _, rec := range kept {
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	removed := len(rows) - len(kept)
	s.logger.Debug("deleted habit entries", "habit", name, "removed", removed)
	return removed, nil
}

// row keeps the raw record so rewrites preserve fields verbatim.
type row struct {
	line   int
	fields int
	record []string
	entry  habit.Entry
}

func (s *Store) readRows() ([]row, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLogNotFound, s.path)
		}
		return nil, fmt.Errorf("opening habit log: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows []row
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing habit log: %w", err)
		}

		line, _ := r.FieldPos(0)
		rw := row{line: line, fields: len(rec), record: rec}
		if len(rec) >= 3 {
			rw.entry = habit.Entry{DateText: rec[0], Habit: rec[1], Status: rec[2]}
			if d, err := habit.ParseDay(rec[0]); err == nil {
				rw.entry.Date = d
			} else {
				s.logger.Debug("unparseable entry date", "line", line, "date", rec[0])
			}
		}
		rows = append(rows, rw)
	}
	return rows, nil
}
