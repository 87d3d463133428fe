// Package coach provides motivational tip generators for habits.
package coach

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrGeneration wraps every failure to produce a tip.
var ErrGeneration = errors.New("tip generation failed")

// Coach generates a short motivational tip for a habit.
type Coach interface {
	// Name returns the backend identifier.
	Name() string

	// GenerateTip returns a tip for habitName. It may be slow.
	GenerateTip(ctx context.Context, habitName string) (string, error)
}

// TipFunc adapts a plain function to the Coach interface.
type TipFunc func(ctx context.Context, habitName string) (string, error)

// Name returns "func".
func (f TipFunc) Name() string {
	return "func"
}

// GenerateTip calls f.
func (f TipFunc) GenerateTip(ctx context.Context, habitName string) (string, error) {
	return f(ctx, habitName)
}

// Options configures the model-backed coaches.
type Options struct {
	Model     string
	MaxTokens int
	APIKey    string
	BaseURL   string
}

// New creates a coach by backend name.
func New(backend string, opts Options) (Coach, error) {
	switch strings.ToLower(backend) {
	case "", "static":
		return NewStaticCoach(), nil
	case "anthropic":
		if opts.APIKey == "" {
			opts.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		return NewAnthropicCoach(opts)
	case "claude-cli":
		return NewClaudeCLICoach(), nil
	default:
		return nil, fmt.Errorf("unknown coach backend: %s", backend)
	}
}

// BuildPrompt returns the instruction sent to model-backed coaches.
func BuildPrompt(habitName string) string {
	return fmt.Sprintf("Provide a motivational tip for improving the habit: %s. Be positive and actionable. "+
		"Reply with a single sentence and nothing else.", habitName)
}

// Generate runs c and normalizes its output. Any failure, including an empty
// tip, is returned wrapped in ErrGeneration.
func Generate(ctx context.Context, c Coach, habitName string) (string, error) {
	tip, err := c.GenerateTip(ctx, habitName)
	if err != nil {
		if errors.Is(err, ErrGeneration) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s: %w", ErrGeneration, c.Name(), err)
	}

	tip = strings.TrimSpace(tip)
	if tip == "" {
		return "", fmt.Errorf("%w: %s returned an empty tip", ErrGeneration, c.Name())
	}
	return tip, nil
}
