package coach

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ClaudeCLICoach runs the local claude binary in print mode. It relies on the
// user's existing claude login rather than an API key.
type ClaudeCLICoach struct {
	binary string
	run    func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewClaudeCLICoach creates a coach that shells out to claude.
func NewClaudeCLICoach() *ClaudeCLICoach {
	return &ClaudeCLICoach{binary: "claude", run: runCommand}
}

// Name returns the backend identifier.
func (c *ClaudeCLICoach) Name() string {
	return "claude-cli"
}

// Command returns the command line used to generate a tip.
func (c *ClaudeCLICoach) Command(habitName string) []string {
	return []string{c.binary, "-p", BuildPrompt(habitName)}
}

// GenerateTip runs claude and returns its trimmed stdout.
func (c *ClaudeCLICoach) GenerateTip(ctx context.Context, habitName string) (string, error) {
	args := c.Command(habitName)
	out, err := c.run(ctx, args[0], args[1:]...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("running %s: %w: %s", name, err, msg)
		}
		return nil, fmt.Errorf("running %s: %w", name, err)
	}
	return out, nil
}
