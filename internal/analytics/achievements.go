package analytics

import "github.com/swamp-dev/habitify/internal/habit"

// Category groups achievement thresholds; at most one badge per category is
// awarded.
type Category string

const (
	CategoryEntries Category = "entries"
	CategoryHabits  Category = "habits"
	CategoryWeekly  Category = "weekly"
)

// Badge is an awarded achievement.
type Badge struct {
	Category  Category `json:"category"`
	Title     string   `json:"title"`
	Threshold int      `json:"threshold"`
	Value     int      `json:"value"`
}

type tier struct {
	threshold int
	title     string
}

var achievementTiers = []struct {
	category Category
	tiers    []tier // ascending
}{
	{CategoryEntries, []tier{
		{50, "Getting Started: 50 entries logged"},
		{100, "Committed: 100 entries logged"},
		{500, "Dedicated: 500 entries logged"},
		{1000, "Habit Master: 1000 entries logged"},
	}},
	{CategoryHabits, []tier{
		{5, "Explorer: tracking 5 habits"},
		{10, "Collector: tracking 10 habits"},
	}},
	{CategoryWeekly, []tier{
		{5, "Warming Up: 5 successes this week"},
		{10, "On Fire: 10 successes this week"},
		{20, "Unstoppable: 20 successes this week"},
	}},
}

// Achievements evaluates each category independently and returns the highest
// badge met in each, in category order.
func Achievements(entries []habit.Entry, today habit.Day) []Badge {
	values := map[Category]int{
		CategoryEntries: len(entries),
		CategoryHabits:  countUniqueHabits(entries),
		CategoryWeekly:  countSuccesses(FilterWindow(entries, today, WeekDays)),
	}

	var badges []Badge
	for _, c := range achievementTiers {
		v := values[c.category]
		var best *tier
		for i := range c.tiers {
			if v >= c.tiers[i].threshold {
				best = &c.tiers[i]
			}
		}
		if best != nil {
			badges = append(badges, Badge{
				Category:  c.category,
				Title:     best.title,
				Threshold: best.threshold,
				Value:     v,
			})
		}
	}
	return badges
}
