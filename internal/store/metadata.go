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

var (
	// ErrHabitExists is returned when creating a habit that already has metadata.
	ErrHabitExists = errors.New("habit already exists")
	// ErrHabitNotFound is returned when removing unknown habit metadata.
	ErrHabitNotFound = errors.New("habit not found")
)

// HabitMetadata describes a habit created with create-habit.
type HabitMetadata struct {
	Name        string `json:"-"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Created     string `json:"created"`
	// TotalEntries is the entry count at creation time; it is never refreshed.
	TotalEntries int `json:"total_entries"`
}

// Metadata maps a habit name to its metadata record.
type Metadata map[string]HabitMetadata

// LoadMetadata reads the metadata file. A missing file yields no habits.
func LoadMetadata(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Metadata{}, nil
		}
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}

	md := Metadata{}
	if err := json.Unmarshal(data, &md); err != nil {
		return nil, fmt.Errorf("parsing metadata file: %w", err)
	}
	for name, h := range md {
		h.Name = name
		md[name] = h
	}
	return md, nil
}

// Create adds a metadata record. Names are matched exactly.
func (m Metadata) Create(h HabitMetadata) error {
	if _, ok := m[h.Name]; ok {
		return fmt.Errorf("%w: %s", ErrHabitExists, h.Name)
	}
	m[h.Name] = h
	return nil
}

// Remove deletes the record for name.
func (m Metadata) Remove(name string) error {
	if _, ok := m[name]; !ok {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, name)
	}
	delete(m, name)
	return nil
}

// List returns all records sorted by name.
func (m Metadata) List() []HabitMetadata {
	out := make([]HabitMetadata, 0, len(m))
	for _, h := range m {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Save writes the metadata file.
func (m Metadata) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metadata: %w", err)
	}
	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(append(data, '\n'))
		return err
	})
}
