// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"fmt"
	"time"

	"github.com/chipforge-eda/chipforge/internal/core/models"
	"github.com/chipforge-eda/chipforge/internal/core/prompt"
	"github.com/chipforge-eda/chipforge/internal/provision/condition"
)

// StepFailure is the error returned when a required step's action or
// verification fails; the run aborts at that step.
type StepFailure struct {
	StepID string
	Err    error
}

func (e *StepFailure) Error() string {
	return fmt.Sprintf("step '%s' failed: %v", e.StepID, e.Err)
}

func (e *StepFailure) Unwrap() error {
	return e.Err
}

// Runner executes an ordered list of install steps. Each step goes
// through check (idempotency gate), optional consent, action, and
// verify (post-condition). A required step's failure aborts the run;
// re-invocation skips everything already satisfied.
type Runner struct {
	prompter  prompt.Prompter
	evaluator *condition.CELEvaluator
	facts     map[string]interface{}
	options   models.ExecutionOptions
}

// NewRunner creates a runner over the given prompter and host facts.
func NewRunner(prompter prompt.Prompter, facts map[string]interface{}, options models.ExecutionOptions) (*Runner, error) {
	evaluator, err := condition.NewCELEvaluator()
	if err != nil {
		return nil, fmt.Errorf("error creating condition evaluator: %w", err)
	}

	return &Runner{
		prompter:  prompter,
		evaluator: evaluator,
		facts:     facts,
		options:   options,
	}, nil
}

// ValidateSteps checks the step list for declaration errors: duplicate
// IDs and dependencies on steps not declared earlier in the list.
func ValidateSteps(steps []models.InstallStep) error {
	seen := make(map[string]bool, len(steps))
	for _, step := range steps {
		if step.ID == "" {
			return fmt.Errorf("step with empty ID")
		}
		if seen[step.ID] {
			return fmt.Errorf("duplicate step ID '%s'", step.ID)
		}
		for _, dep := range step.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("step '%s' depends on '%s' which is not declared before it", step.ID, dep)
			}
		}
		seen[step.ID] = true
	}
	return nil
}

// RunSteps executes the steps in order and returns the run log. The
// returned error is non-nil when a required step failed; the log then
// records every later step as aborted.
func (r *Runner) RunSteps(steps []models.InstallStep) (*models.ProvisioningRun, error) {
	if err := ValidateSteps(steps); err != nil {
		return nil, err
	}

	run := &models.ProvisioningRun{}
	var fatal error

	for i, step := range steps {
		if fatal != nil {
			run.Results = append(run.Results, models.StepResult{
				StepID:  step.ID,
				Outcome: models.OutcomeAborted,
				Error:   "aborted due to earlier failure",
			})
			continue
		}

		fmt.Printf("Step %d/%d: %s\n", i+1, len(steps), step.ID)

		result := r.runStep(step, run)
		run.Results = append(run.Results, result)

		if result.Outcome == models.OutcomeFailure && !step.Optional {
			fatal = &StepFailure{StepID: step.ID, Err: fmt.Errorf("%s", result.Error)}
		}
	}

	r.printSummary(run)
	return run, fatal
}

// runStep evaluates one step: condition, dependency gate, idempotency
// check, consent, action, verification.
func (r *Runner) runStep(step models.InstallStep, run *models.ProvisioningRun) (result models.StepResult) {
	result = models.StepResult{StepID: step.ID, Outcome: models.OutcomePending}
	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
	}()

	// Host condition: a step excluded on this machine is not an error.
	if step.When != "" {
		applies, err := r.evaluator.EvaluateExpression(step.When, r.facts)
		if err != nil {
			result.Outcome = models.OutcomeFailure
			result.Error = fmt.Sprintf("error evaluating condition: %v", err)
			return result
		}
		if !applies {
			if r.options.VerboseLogging {
				fmt.Printf("  Condition '%s' not met on this host, skipping\n", step.When)
			}
			result.Outcome = models.OutcomeSkipped
			return result
		}
	}

	// Dependency gate: the action never runs unless every dependency
	// succeeded or was already satisfied.
	for _, dep := range step.DependsOn {
		switch run.Outcome(dep) {
		case models.OutcomeSuccess, models.OutcomeSkipped:
			// satisfied
		default:
			result.Outcome = models.OutcomeAborted
			result.Error = fmt.Sprintf("dependency '%s' did not succeed", dep)
			fmt.Printf("  Skipping: dependency '%s' did not succeed\n", dep)
			return result
		}
	}

	// Idempotency gate.
	satisfied, err := step.Check()
	if err != nil {
		result.Outcome = models.OutcomeFailure
		result.Error = fmt.Sprintf("check failed: %v", err)
		return result
	}
	if satisfied {
		fmt.Printf("  Already satisfied, skipping\n")
		result.Outcome = models.OutcomeSkipped
		return result
	}

	// Consent for optional steps, default decline.
	if step.Optional && r.options.Interactive {
		ok, err := r.prompter.Confirm(fmt.Sprintf("Install %s (%s)?", step.ID, step.Description), false)
		if err != nil {
			result.Outcome = models.OutcomeFailure
			result.Error = fmt.Sprintf("error prompting for consent: %v", err)
			return result
		}
		if !ok {
			fmt.Printf("  Declined\n")
			result.Outcome = models.OutcomeDeclined
			return result
		}
	} else if step.Optional && !r.options.Interactive {
		fmt.Printf("  Optional step declined (non-interactive)\n")
		result.Outcome = models.OutcomeDeclined
		return result
	}

	if r.options.DryRun {
		fmt.Printf("  Would run: %s\n", step.Description)
		result.Outcome = models.OutcomeSuccess
		return result
	}

	if r.options.VerboseLogging {
		fmt.Printf("  Running: %s\n", step.Description)
	}

	if err := step.Action(); err != nil {
		result.Outcome = models.OutcomeFailure
		result.Error = fmt.Sprintf("action failed: %v", err)
		r.warnIfOptional(step, result.Error)
		return result
	}

	verified, err := step.Verify()
	if err != nil {
		result.Outcome = models.OutcomeFailure
		result.Error = fmt.Sprintf("verification error: %v", err)
		r.warnIfOptional(step, result.Error)
		return result
	}
	if !verified {
		result.Outcome = models.OutcomeFailure
		result.Error = "verification failed after action"
		r.warnIfOptional(step, result.Error)
		return result
	}

	result.Outcome = models.OutcomeSuccess
	return result
}

func (r *Runner) warnIfOptional(step models.InstallStep, msg string) {
	if step.Optional {
		fmt.Printf("Warning: optional step '%s' failed: %s\n", step.ID, msg)
	} else {
		fmt.Printf("Error: step '%s' failed: %s\n", step.ID, msg)
	}
}

// printSummary prints the per-outcome tally for the run.
func (r *Runner) printSummary(run *models.ProvisioningRun) {
	counts := run.Counts()
	fmt.Printf("\nProvisioning summary: %d succeeded, %d skipped, %d declined, %d failed, %d aborted (out of %d steps)\n",
		counts[models.OutcomeSuccess], counts[models.OutcomeSkipped], counts[models.OutcomeDeclined],
		counts[models.OutcomeFailure], counts[models.OutcomeAborted], len(run.Results))
}

// VerifyAll re-runs every step's verify probe independent of its check,
// answering "did installation truly succeed" separately from "did we
// attempt it".
func VerifyAll(steps []models.InstallStep) map[string]bool {
	report := make(map[string]bool, len(steps))
	for _, step := range steps {
		ok, err := step.Verify()
		report[step.ID] = ok && err == nil
	}
	return report
}
