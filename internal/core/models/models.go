// SPDX-License-Identifier: Apache-2.0

package models

import "time"

// StepOutcome describes what happened to a single install step during a run.
type StepOutcome string

const (
	// OutcomePending means the step has not been evaluated yet.
	OutcomePending StepOutcome = "pending"
	// OutcomeSkipped means the step's check reported it already satisfied,
	// or its host condition excluded it on this machine.
	OutcomeSkipped StepOutcome = "skipped"
	// OutcomeDeclined means the step is optional and the user declined it.
	OutcomeDeclined StepOutcome = "declined"
	// OutcomeSuccess means the action ran and verification passed.
	OutcomeSuccess StepOutcome = "success"
	// OutcomeFailure means the action or its verification failed.
	OutcomeFailure StepOutcome = "failure"
	// OutcomeAborted means the step never ran because an earlier required
	// step or a listed dependency did not succeed.
	OutcomeAborted StepOutcome = "aborted"
)

// CheckFunc reports whether a step's post-condition already holds.
// Checks must be pure probes with no side effects so that re-running the
// engine after an abort is always safe.
type CheckFunc func() (bool, error)

// ActionFunc performs the step's installation work.
type ActionFunc func() error

// InstallStep is one unit of provisioning work. Steps are declared once
// at startup and never mutated; the runner re-evaluates Check on every
// invocation, so a completed step is skipped on re-runs.
type InstallStep struct {
	ID          string
	Description string

	// Optional steps prompt for consent in interactive mode (default
	// decline) and downgrade failures to warnings.
	Optional bool

	// When is a CEL expression over the host facts map; empty means the
	// step always applies. A false result records the step as skipped.
	When string

	// DependsOn lists step IDs whose outcome must be success or skipped
	// before this step's action may run.
	DependsOn []string

	Check  CheckFunc
	Action ActionFunc
	Verify CheckFunc
}

// StepResult records the outcome of one step in a provisioning run.
type StepResult struct {
	StepID   string        `json:"step_id" yaml:"step_id"`
	Outcome  StepOutcome   `json:"outcome" yaml:"outcome"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration time.Duration `json:"duration,omitempty" yaml:"duration,omitempty"`
}

// ProvisioningRun is the ordered log of a single runner invocation.
type ProvisioningRun struct {
	Results []StepResult `json:"results" yaml:"results"`
}

// Outcome returns the recorded outcome for a step ID, or OutcomePending
// if the step has no result yet.
func (r *ProvisioningRun) Outcome(stepID string) StepOutcome {
	for _, res := range r.Results {
		if res.StepID == stepID {
			return res.Outcome
		}
	}
	return OutcomePending
}

// Failed reports whether the run recorded any failure or abort.
func (r *ProvisioningRun) Failed() bool {
	for _, res := range r.Results {
		if res.Outcome == OutcomeFailure || res.Outcome == OutcomeAborted {
			return true
		}
	}
	return false
}

// Counts tallies results by outcome.
func (r *ProvisioningRun) Counts() map[StepOutcome]int {
	counts := make(map[StepOutcome]int)
	for _, res := range r.Results {
		counts[res.Outcome]++
	}
	return counts
}

// ExecutionOptions contains options for a provisioning run.
type ExecutionOptions struct {
	DryRun         bool
	VerboseLogging bool
	Interactive    bool
	WorkingDir     string
}
