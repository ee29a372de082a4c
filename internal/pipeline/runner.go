package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/consilium/internal/llm"
)

// Runner executes a validated step chain in declared order, delegating each
// step's reasoning to a content provider. There is no step-level retry: any
// provider error aborts the run.
type Runner struct {
	provider llm.Provider
	logger   arbor.ILogger
}

// NewRunner creates a runner backed by the given content provider.
func NewRunner(provider llm.Provider, logger arbor.ILogger) *Runner {
	return &Runner{
		provider: provider,
		logger:   logger,
	}
}

// Run executes the steps strictly in order and returns the final step's
// output. Each step's prompt carries exactly the outputs of its declared
// prerequisites plus whatever its Gather function collected.
func (r *Runner) Run(ctx context.Context, steps []Step) (string, error) {
	if err := ValidateSteps(steps); err != nil {
		return "", err
	}

	outputs := make(map[string]string, len(steps))
	var final string

	for i, step := range steps {
		r.logger.Info().
			Str("step", step.ID).
			Int("position", i+1).
			Int("total", len(steps)).
			Msg("Executing pipeline step")

		var gathered string
		if step.Gather != nil {
			gathered = step.Gather(ctx)
		}

		resp, err := r.provider.GenerateContent(ctx, &llm.ContentRequest{
			Prompt:            buildPrompt(step, outputs, gathered),
			SystemInstruction: systemInstruction(step),
		})
		if err != nil {
			r.logger.Error().
				Str("step", step.ID).
				Err(err).
				Msg("Pipeline step failed")
			return "", fmt.Errorf("step %q failed: %w", step.ID, err)
		}

		outputs[step.ID] = resp.Text
		final = resp.Text
	}

	return final, nil
}

// systemInstruction renders a step's role binding as the provider's system
// instruction.
func systemInstruction(step Step) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s.", step.Role)
	if step.Goal != "" {
		fmt.Fprintf(&b, "\n\nYour goal: %s", step.Goal)
	}
	if step.Backstory != "" {
		fmt.Fprintf(&b, "\n\nBackstory: %s", step.Backstory)
	}
	return b.String()
}

// buildPrompt assembles a step's prompt: prerequisite outputs in declared
// order, then gathered data, then the task description and expected output.
func buildPrompt(step Step, outputs map[string]string, gathered string) string {
	var b strings.Builder

	for _, dep := range step.DependsOn {
		fmt.Fprintf(&b, "CONTEXT FROM STEP %q:\n%s\n\n", dep, outputs[dep])
	}

	if gathered != "" {
		fmt.Fprintf(&b, "COLLECTED DATA:\n%s\n\n", gathered)
	}

	b.WriteString(step.Description)

	if step.ExpectedOutput != "" {
		fmt.Fprintf(&b, "\n\nExpected output: %s", step.ExpectedOutput)
	}

	return b.String()
}
