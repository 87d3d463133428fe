package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swamp-dev/habitify/internal/habit"
)

func TestAchievementsNone(t *testing.T) {
	assert.Empty(t, Achievements(nil, today))
	assert.Empty(t, Achievements(repeat(4, 0, "Run", "Completed"), today))
}

func TestAchievementsHighestTierPerCategory(t *testing.T) {
	var entries []habit.Entry
	// 120 old entries spread over 6 habits, outside the weekly window.
	for i := 0; i < 120; i++ {
		entries = append(entries, entry(30, fmt.Sprintf("Habit %d", i%6), "Completed"))
	}
	// 12 weekly successes.
	entries = append(entries, repeat(12, 2, "Habit 0", "Exceeded")...)

	badges := Achievements(entries, today)
	require.Len(t, badges, 3)

	assert.Equal(t, CategoryEntries, badges[0].Category)
	assert.Equal(t, 100, badges[0].Threshold)
	assert.Equal(t, 132, badges[0].Value)

	assert.Equal(t, CategoryHabits, badges[1].Category)
	assert.Equal(t, 5, badges[1].Threshold)

	assert.Equal(t, CategoryWeekly, badges[2].Category)
	assert.Equal(t, 10, badges[2].Threshold)
}

func TestAchievementsTopTiers(t *testing.T) {
	var entries []habit.Entry
	for i := 0; i < 1000; i++ {
		entries = append(entries, entry(100, fmt.Sprintf("H%d", i%10), "Completed"))
	}
	entries = append(entries, repeat(20, 0, "H0", "Completed")...)

	badges := Achievements(entries, today)
	require.Len(t, badges, 3)
	assert.Equal(t, 1000, badges[0].Threshold)
	assert.Equal(t, 10, badges[1].Threshold)
	assert.Equal(t, 20, badges[2].Threshold)
}
