// Package habit defines the habit entry model shared by the store and analytics.
package habit

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// DateLayout is the on-disk encoding of an entry date.
const DateLayout = "2006-01-02"

// Day is a calendar date with no time-of-day component.
type Day struct {
	t time.Time
}

// DayOf returns the calendar date of t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Date builds a Day from its parts.
func Date(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Day{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return DayOf(t), nil
}

// IsZero reports whether d is the zero Day (an unparseable or missing date).
func (d Day) IsZero() bool {
	return d.t.IsZero()
}

// AddDays returns d shifted by n calendar days.
func (d Day) AddDays(n int) Day {
	return Day{t: d.t.AddDate(0, 0, n)}
}

// Before reports whether d is strictly earlier than o.
func (d Day) Before(o Day) bool {
	return d.t.Before(o.t)
}

// After reports whether d is strictly later than o.
func (d Day) After(o Day) bool {
	return d.t.After(o.t)
}

// Equal reports whether d and o are the same date.
func (d Day) Equal(o Day) bool {
	return d.t.Equal(o.t)
}

// DaysSince returns the number of calendar days from o to d.
func (d Day) DaysSince(o Day) int {
	return int(d.t.Sub(o.t).Hours() / 24)
}

func (d Day) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Entry is one logged habit occurrence.
type Entry struct {
	Date Day
	// DateText is the date field exactly as stored. It is kept so rows with
	// unparseable dates survive a rewrite unchanged.
	DateText string
	Habit    string
	Status   string
}

// NewEntry builds an entry dated d.
func NewEntry(d Day, name, status string) Entry {
	return Entry{Date: d, DateText: d.String(), Habit: name, Status: status}
}

// Record returns the entry as a (date, habit, status) row.
func (e Entry) Record() []string {
	date := e.DateText
	if date == "" {
		date = e.Date.String()
	}
	return []string{date, e.Habit, e.Status}
}

// Status is a recognized entry status.
type Status string

const (
	StatusCompleted Status = "Completed"
	StatusExceeded  Status = "Exceeded"
	StatusPartial   Status = "Partial"
	StatusSkipped   Status = "Skipped"
)

// StatusUnrecognized is returned by Classify for free-text statuses.
const StatusUnrecognized Status = ""

var knownStatuses = []Status{StatusCompleted, StatusExceeded, StatusPartial, StatusSkipped}

// Classify maps a stored status to its recognized bucket, ignoring case and
// surrounding whitespace.
func Classify(status string) Status {
	s := strings.TrimSpace(status)
	for _, k := range knownStatuses {
		if strings.EqualFold(s, string(k)) {
			return k
		}
	}
	return StatusUnrecognized
}

// IsSuccess reports whether status counts toward streaks and completion rates.
func IsSuccess(status string) bool {
	switch Classify(status) {
	case StatusCompleted, StatusExceeded:
		return true
	}
	return false
}

// IsSuccess reports whether the entry has a success status.
func (e Entry) IsSuccess() bool {
	return IsSuccess(e.Status)
}

// Fold returns the case-folded form of a habit name.
func Fold(name string) string {
	return cases.Fold().String(name)
}

// SameName reports whether two habit names match ignoring case.
func SameName(a, b string) bool {
	return Fold(a) == Fold(b)
}

// ContainsName reports whether name contains query ignoring case.
func ContainsName(name, query string) bool {
	return strings.Contains(Fold(name), Fold(query))
}
