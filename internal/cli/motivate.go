package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swamp-dev/habitify/internal/coach"
	"github.com/swamp-dev/habitify/internal/config"
)

var motivateCmd = &cobra.Command{
	Use:   "motivate <habit>",
	Short: "Get a motivational tip for a habit",
	Long: `Motivate asks the configured coach backend for a one-line tip.

Backends (coach.backend in habitify.yaml or HABITIFY_COACH_BACKEND):
  static      offline canned tips (default)
  anthropic   Anthropic Messages API, needs ANTHROPIC_API_KEY
  claude-cli  the local claude binary

Examples:
  habitify motivate Exercise
  HABITIFY_COACH_BACKEND=anthropic habitify motivate Reading`,
	Args: cobra.ExactArgs(1),
	RunE: runMotivate,
}

// newCoach builds the tip generator; tests replace it.
var newCoach = func(cfg *config.Config) (coach.Coach, error) {
	return coach.New(cfg.Coach.Backend, coach.Options{
		Model:     cfg.Coach.Model,
		MaxTokens: cfg.Coach.MaxTokens,
	})
}

func runMotivate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	c, err := newCoach(cfg)
	if err != nil {
		return err
	}

	timeout, err := cfg.CoachTimeout()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger.Debug("generating tip", "backend", c.Name(), "habit", args[0])
	tip, err := coach.Generate(ctx, c, args[0])
	if err != nil {
		return fmt.Errorf("generating tip: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Motivational Tip for '%s': %s\n", args[0], tip)
	return nil
}
