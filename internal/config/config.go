// Package config handles habitify configuration parsing and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the default configuration file name.
const FileName = "habitify.yaml"

// Config represents the habitify.yaml configuration file.
type Config struct {
	Version string        `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	Coach   CoachConfig   `yaml:"coach"`
	Display DisplayConfig `yaml:"display"`
}

// StorageConfig locates the on-disk files. Relative file names are resolved
// against DataDir.
type StorageConfig struct {
	DataDir      string `yaml:"data_dir"`
	EntryLog     string `yaml:"entry_log"`
	GoalsFile    string `yaml:"goals_file"`
	MetadataFile string `yaml:"metadata_file"`
	BackupDir    string `yaml:"backup_dir"`
}

// CoachConfig selects and tunes the motivational tip generator.
type CoachConfig struct {
	Backend   string `yaml:"backend"` // static, anthropic, claude-cli
	Model     string `yaml:"model"`
	MaxTokens int    `yaml:"max_tokens"`
	Timeout   string `yaml:"timeout"`
}

// DisplayConfig controls text rendering.
type DisplayConfig struct {
	BarWidth      int `yaml:"bar_width"`
	RecentEntries int `yaml:"recent_entries"`
	TopHabits     int `yaml:"top_habits"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Storage: StorageConfig{
			DataDir:      defaultDataDir(),
			EntryLog:     "habits.csv",
			GoalsFile:    "goals.json",
			MetadataFile: "habits_metadata.json",
			BackupDir:    "backups",
		},
		Coach: CoachConfig{
			Backend:   "static",
			Model:     "claude-sonnet-4-20250514",
			MaxTokens: 120,
			Timeout:   "60s",
		},
		Display: DisplayConfig{
			BarWidth:      30,
			RecentEntries: 5,
			TopHabits:     3,
		},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".habitify"
	}
	return filepath.Join(home, ".habitify")
}

// Load reads and parses the habitify.yaml config file.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	validBackends := map[string]bool{"static": true, "anthropic": true, "claude-cli": true}
	if !validBackends[c.Coach.Backend] {
		return fmt.Errorf("invalid coach backend: %s (must be static, anthropic, or claude-cli)", c.Coach.Backend)
	}

	if _, err := c.CoachTimeout(); err != nil {
		return err
	}

	if c.Storage.EntryLog == "" {
		return fmt.Errorf("storage.entry_log must not be empty")
	}

	if c.Display.BarWidth < 1 {
		return fmt.Errorf("display.bar_width must be at least 1")
	}

	if c.Display.RecentEntries < 0 || c.Display.TopHabits < 0 {
		return fmt.Errorf("display counts must not be negative")
	}

	return nil
}

// CoachTimeout parses the configured tip generation timeout.
func (c *Config) CoachTimeout() (time.Duration, error) {
	if strings.TrimSpace(c.Coach.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Coach.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid coach timeout %q: %w", c.Coach.Timeout, err)
	}
	return d, nil
}

// Paths holds the resolved file locations for one invocation.
type Paths struct {
	DataDir   string
	EntryLog  string
	Goals     string
	Metadata  string
	BackupDir string
}

// Paths resolves the storage settings into absolute-or-relative file paths.
func (c *Config) Paths() Paths {
	dir := expandHome(c.Storage.DataDir)
	resolve := func(name string) string {
		name = expandHome(name)
		if name == "" || filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(dir, name)
	}

	return Paths{
		DataDir:   dir,
		EntryLog:  resolve(c.Storage.EntryLog),
		Goals:     resolve(c.Storage.GoalsFile),
		Metadata:  resolve(c.Storage.MetadataFile),
		BackupDir: resolve(c.Storage.BackupDir),
	}
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// FindConfigFile searches for habitify.yaml in current and parent directories.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := cwd; ; dir = filepath.Dir(dir) {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		if dir == filepath.Dir(dir) {
			break
		}
	}

	return "", fmt.Errorf("%s not found in %s or parent directories", FileName, cwd)
}
