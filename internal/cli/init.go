package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/config"
	"github.com/swamp-dev/habitify/internal/store"
)

var (
	initDir   string
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a habitify.yaml and an empty habit log",
	Long: `Init writes a habitify.yaml with default settings and creates the data
directory with an empty habit log.

Examples:
  habitify init
  habitify init --data-dir ./habits
  habitify init --dir ~/.habitify --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&initDir, "dir", ".", "directory to write habitify.yaml into")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing habitify.yaml")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	path := filepath.Join(initDir, config.FileName)

	logger.Info("initializing habitify", "config", path, "data_dir", cfg.Storage.DataDir)

	if err := createConfigFile(cfg, path); err != nil {
		return err
	}

	paths := cfg.Paths()
	s := store.New(paths.EntryLog, store.WithLogger(logger))
	if s.Exists() {
		logger.Info("habit log already exists, skipping", "path", paths.EntryLog)
	} else if err := s.Init(); err != nil {
		return fmt.Errorf("creating habit log: %w", err)
	}

	fmt.Fprintln(w, "✓ Initialized habitify")
	fmt.Fprintf(w, "  config:    %s\n", path)
	fmt.Fprintf(w, "  habit log: %s\n", paths.EntryLog)
	fmt.Fprintln(w, "\nNext: habitify log <habit>")
	return nil
}

func createConfigFile(cfg *config.Config, path string) error {
	if !initForce {
		if _, err := os.Stat(path); err == nil {
			logger.Info("habitify.yaml already exists, skipping")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	logger.Info("created habitify.yaml")
	return nil
}
