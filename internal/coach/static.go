package coach

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/swamp-dev/habitify/internal/habit"
)

var staticTips = []string{
	"Start small with %s: a two-minute version done today beats a perfect plan for tomorrow.",
	"Tie %s to something you already do every day so the old habit reminds you of the new one.",
	"Track %s where you can see it; a visible streak is hard to break.",
	"Missed a day of %s? Never miss twice. Pick it back up at the next chance.",
	"Make %s easy to begin: lay out everything you need the night before.",
	"Celebrate each session of %s, however short. Progress you notice is progress you keep.",
	"Plan exactly when and where %s happens today, then show up like it's an appointment.",
}

// StaticCoach returns canned tips. The choice depends only on the habit name,
// so the same habit always gets the same tip.
type StaticCoach struct{}

// NewStaticCoach creates an offline coach.
func NewStaticCoach() *StaticCoach {
	return &StaticCoach{}
}

// Name returns the backend identifier.
func (c *StaticCoach) Name() string {
	return "static"
}

// GenerateTip returns a deterministic tip for habitName.
func (c *StaticCoach) GenerateTip(ctx context.Context, habitName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	h := fnv.New32a()
	h.Write([]byte(habit.Fold(habitName)))
	return fmt.Sprintf(staticTips[h.Sum32()%uint32(len(staticTips))], habitName), nil
}
