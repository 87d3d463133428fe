package archive

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swamp-dev/habitify/internal/habit"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := Open(filepath.Join(t.TempDir(), "habits.db"))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func sampleEntries() []habit.Entry {
	d := habit.Date(2026, time.October, 18)
	return []habit.Entry{
		habit.NewEntry(d, "Run", "Completed"),
		habit.NewEntry(d, "Read, slowly", "Skipped"),
		habit.NewEntry(d.AddDays(-1), "Run", "exceeded"),
		habit.NewEntry(d.AddDays(-1), "Read, slowly", "Completed"),
		habit.NewEntry(d.AddDays(-2), "Write", "Partial"),
		{DateText: "someday", Habit: "Run", Status: "Done"},
	}
}

func TestSchemaVersion(t *testing.T) {
	a := openTestArchive(t)
	var version int
	require.NoError(t, a.db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habits.db")

	a, err := Open(path)
	require.NoError(t, err)
	_, err = a.SaveSnapshot(sampleEntries(), "habits.csv", time.Now())
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(path)
	require.NoError(t, err)
	defer a.Close()

	snaps, err := a.Snapshots()
	require.NoError(t, err)
	assert.Len(t, snaps, 1)
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	a := openTestArchive(t)
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

	entries := sampleEntries()
	snap, err := a.SaveSnapshot(entries, "habits.csv", now)
	require.NoError(t, err)

	_, err = uuid.Parse(snap.ID)
	assert.NoError(t, err, "snapshot id should be a uuid")
	assert.Equal(t, len(entries), snap.EntryCount)

	got, err := a.Entries(snap.ID)
	require.NoError(t, err)
	require.Len(t, got, len(entries))
	for i := range entries {
		assert.Equal(t, entries[i].Record(), got[i].Record())
	}
	assert.True(t, got[0].Date.Equal(entries[0].Date))
	assert.True(t, got[5].Date.IsZero())

	latest, err := a.LatestSnapshot()
	require.NoError(t, err)
	assert.Equal(t, snap.ID, latest.ID)
	assert.True(t, latest.CreatedAt.Equal(now))
}

func TestHabitCounts(t *testing.T) {
	a := openTestArchive(t)
	snap, err := a.SaveSnapshot(sampleEntries(), "habits.csv", time.Now())
	require.NoError(t, err)

	counts, err := a.HabitCounts(snap.ID)
	require.NoError(t, err)
	assert.Equal(t, []HabitCount{
		{Habit: "Run", Total: 3, Successes: 2},
		{Habit: "Read, slowly", Total: 2, Successes: 1},
		{Habit: "Write", Total: 1, Successes: 0},
	}, counts)
}

func TestSnapshotsNewestFirst(t *testing.T) {
	a := openTestArchive(t)
	base := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	first, err := a.SaveSnapshot(nil, "a.csv", base)
	require.NoError(t, err)
	second, err := a.SaveSnapshot(sampleEntries()[:1], "b.csv", base.Add(time.Hour))
	require.NoError(t, err)

	snaps, err := a.Snapshots()
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second.ID, snaps[0].ID)
	assert.Equal(t, first.ID, snaps[1].ID)
	assert.Equal(t, 0, snaps[1].EntryCount)
}

func TestLatestSnapshotEmpty(t *testing.T) {
	a := openTestArchive(t)
	_, err := a.LatestSnapshot()
	assert.Error(t, err)
}
