package habit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2026-03-09")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-09", d.String())
	assert.True(t, d.Equal(Date(2026, time.March, 9)))

	_, err = ParseDay("09/03/2026")
	assert.Error(t, err)
}

func TestDayArithmetic(t *testing.T) {
	d := Date(2026, time.March, 1)

	assert.Equal(t, "2026-02-28", d.AddDays(-1).String())
	assert.Equal(t, 1, d.DaysSince(d.AddDays(-1)))
	assert.True(t, d.AddDays(-1).Before(d))
	assert.True(t, d.AddDays(1).After(d))
	assert.False(t, d.IsZero())
	assert.True(t, Day{}.IsZero())
	assert.Equal(t, "", Day{}.String())
}

func TestDayOfIgnoresClock(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	late := time.Date(2026, time.May, 4, 23, 59, 0, 0, loc)
	assert.Equal(t, "2026-05-04", DayOf(late).String())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		status string
		want   Status
	}{
		{"Completed", StatusCompleted},
		{"completed", StatusCompleted},
		{" EXCEEDED ", StatusExceeded},
		{"partial", StatusPartial},
		{"Skipped", StatusSkipped},
		{"Done", StatusUnrecognized},
		{"", StatusUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.status))
		})
	}
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess("Completed"))
	assert.True(t, IsSuccess("exceeded"))
	assert.False(t, IsSuccess("Partial"))
	assert.False(t, IsSuccess("Skipped"))
	assert.False(t, IsSuccess("whatever"))
}

func TestRecordPreservesRawDate(t *testing.T) {
	e := Entry{DateText: "someday", Habit: "Read", Status: "Completed"}
	assert.Equal(t, []string{"someday", "Read", "Completed"}, e.Record())

	e = NewEntry(Date(2026, time.January, 2), "Run", "Skipped")
	assert.Equal(t, []string{"2026-01-02", "Run", "Skipped"}, e.Record())
}

func TestNameMatching(t *testing.T) {
	assert.True(t, SameName("Exercise", "exercise"))
	assert.True(t, SameName("Straße", "STRASSE"))
	assert.False(t, SameName("Exercise", "Exercises"))
	assert.True(t, ContainsName("Morning Run", "run"))
	assert.False(t, ContainsName("Reading", "run"))
}
