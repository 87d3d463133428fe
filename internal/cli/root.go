// Package cli provides the command-line interface for habitify.
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/swamp-dev/habitify/internal/config"
	"github.com/swamp-dev/habitify/internal/habit"
	"github.com/swamp-dev/habitify/internal/store"
)

var (
	cfgFile string
	dataDir string
	verbose bool
	logger  = slog.Default()

	// now is the clock for every command; tests replace it.
	now = time.Now
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "habitify",
	Short: "Track daily habits from the command line",
	Long: `Habitify records daily habit entries to a CSV file and turns them into
streaks, completion rates, progress bars and achievements.

It can also ask a language model for a motivational tip.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if verbose {
			logLevel = slog.LevelDebug
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./habitify.yaml or ~/.habitify/habitify.yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "directory holding the habit files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(bulkLogCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(deleteHabitCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(goalsCmd)
	rootCmd.AddCommand(createHabitCmd)
	rootCmd.AddCommand(listHabitsCmd)
	rootCmd.AddCommand(removeHabitCmd)
	rootCmd.AddCommand(motivateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", "error", err)
	}

	viper.Reset()
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if found, err := config.FindConfigFile(); err == nil {
		viper.SetConfigFile(found)
	} else {
		viper.SetConfigName("habitify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home + "/.habitify")
		}
	}

	viper.BindEnv("storage.data_dir", "HABITIFY_DATA_DIR")
	viper.BindEnv("coach.backend", "HABITIFY_COACH_BACKEND")
	viper.BindPFlag("storage.data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// loadConfig parses the config file viper located and applies flag and
// environment overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, err
	}

	if dir := viper.GetString("storage.data_dir"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if backend := viper.GetString("coach.backend"); backend != "" {
		cfg.Coach.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	if cfgFile != "" {
		return cfgFile
	}
	return config.FileName
}

// app bundles what one invocation needs.
type app struct {
	cfg   *config.Config
	paths config.Paths
	store *store.Store
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	paths := cfg.Paths()
	logger.Debug("resolved paths", "entry_log", paths.EntryLog, "goals", paths.Goals, "metadata", paths.Metadata)

	return &app{
		cfg:   cfg,
		paths: paths,
		store: store.New(paths.EntryLog, store.WithClock(now), store.WithLogger(logger)),
	}, nil
}

func (a *app) today() habit.Day {
	return habit.DayOf(now())
}

// loadEntries reads the log. A missing log is reported as ok=false so callers
// can print the empty-state message instead of failing.
func (a *app) loadEntries() (entries []habit.Entry, ok bool, err error) {
	entries, err = a.store.ReadAll()
	if errors.Is(err, store.ErrLogNotFound) {
		logger.Debug("habit log missing", "path", a.paths.EntryLog)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading habit log: %w", err)
	}
	return entries, true, nil
}
