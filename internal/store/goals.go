package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
)

// ErrInvalidGoal is returned for goals below one.
var ErrInvalidGoal = errors.New("goal must be at least 1")

// Goals maps a habit name to its daily goal.
type Goals map[string]int

// LoadGoals reads the goals file. A missing file yields empty goals.
func LoadGoals(path string) (Goals, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Goals{}, nil
		}
		return nil, fmt.Errorf("reading goals file: %w", err)
	}

	goals := Goals{}
	if err := json.Unmarshal(data, &goals); err != nil {
		return nil, fmt.Errorf("parsing goals file: %w", err)
	}
	return goals, nil
}

// Set records a daily goal for name.
func (g Goals) Set(name string, perDay int) error {
	if perDay < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidGoal, perDay)
	}
	g[name] = perDay
	return nil
}

// Names returns the habits with goals, sorted.
func (g Goals) Names() []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the goals file.
func (g Goals) Save(path string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling goals: %w", err)
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}
