// SPDX-License-Identifier: Apache-2.0

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvisioningRunOutcome(t *testing.T) {
	run := ProvisioningRun{
		Results: []StepResult{
			{StepID: "first", Outcome: OutcomeSuccess},
			{StepID: "second", Outcome: OutcomeSkipped},
			{StepID: "third", Outcome: OutcomeDeclined},
		},
	}

	assert.Equal(t, OutcomeSuccess, run.Outcome("first"))
	assert.Equal(t, OutcomeSkipped, run.Outcome("second"))
	assert.Equal(t, OutcomeDeclined, run.Outcome("third"))
	assert.Equal(t, OutcomePending, run.Outcome("unknown"))
}

func TestProvisioningRunFailed(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []StepOutcome
		failed   bool
	}{
		{name: "all success", outcomes: []StepOutcome{OutcomeSuccess, OutcomeSkipped}, failed: false},
		{name: "declined is not failed", outcomes: []StepOutcome{OutcomeSuccess, OutcomeDeclined}, failed: false},
		{name: "failure", outcomes: []StepOutcome{OutcomeFailure}, failed: true},
		{name: "abort", outcomes: []StepOutcome{OutcomeSuccess, OutcomeAborted}, failed: true},
		{name: "empty run", outcomes: nil, failed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := ProvisioningRun{}
			for i, outcome := range tt.outcomes {
				run.Results = append(run.Results, StepResult{StepID: string(rune('a' + i)), Outcome: outcome})
			}
			assert.Equal(t, tt.failed, run.Failed())
		})
	}
}

func TestProvisioningRunCounts(t *testing.T) {
	run := ProvisioningRun{
		Results: []StepResult{
			{StepID: "a", Outcome: OutcomeSuccess},
			{StepID: "b", Outcome: OutcomeSuccess},
			{StepID: "c", Outcome: OutcomeSkipped},
			{StepID: "d", Outcome: OutcomeFailure},
		},
	}

	counts := run.Counts()
	assert.Equal(t, 2, counts[OutcomeSuccess])
	assert.Equal(t, 1, counts[OutcomeSkipped])
	assert.Equal(t, 1, counts[OutcomeFailure])
	assert.Equal(t, 0, counts[OutcomeAborted])
}
