package pipeline

import (
	"context"
	"fmt"
)

// GatherFunc collects external data for a step before its prompt is built.
// Gather failures are rendered as explanatory text inside the prompt, never
// returned as errors; the generative engine is told what went wrong and
// works with what it has.
type GatherFunc func(ctx context.Context) string

// Step is one unit of the sequential research process: a role-bound prompt
// with explicit prerequisite steps. Steps form a strict linear chain; a
// step's context is exactly the outputs of the steps it declares in
// DependsOn, never later ones.
type Step struct {
	ID             string
	Role           string
	Goal           string
	Backstory      string
	Description    string
	ExpectedOutput string
	DependsOn      []string
	Gather         GatherFunc
}

// ValidateSteps checks that step IDs are unique and every dependency refers
// to an earlier step in the list. This keeps the chain strictly linear:
// no cycles, no forward references.
func ValidateSteps(steps []Step) error {
	seen := make(map[string]bool, len(steps))
	for i, step := range steps {
		if step.ID == "" {
			return fmt.Errorf("step %d has no ID", i)
		}
		if seen[step.ID] {
			return fmt.Errorf("duplicate step ID %q", step.ID)
		}
		for _, dep := range step.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("step %q depends on %q, which is not an earlier step", step.ID, dep)
			}
		}
		seen[step.ID] = true
	}
	return nil
}
