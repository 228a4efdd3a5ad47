// SPDX-License-Identifier: Apache-2.0

package project

import (
	"testing"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/prompt"
	"github.com/chipforge-eda/chipforge/internal/scaffold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectRequestWizard(t *testing.T) {
	SetContext(config.NewDefaultConfig(), t.TempDir())

	// name, top (enter = default), frequency; then consent to the
	// example design.
	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"blinker", "", "50"},
		Confirms: []bool{true},
	}

	req, err := collectRequest(prompter, "", "", "", false, false)
	require.NoError(t, err)

	assert.Equal(t, "blinker", req.ProjectName)
	assert.Equal(t, "blinker", req.TopModule)
	assert.Equal(t, 50.0, req.ClockFrequencyMHz)
	assert.True(t, req.IncludeExample)
}

func TestCollectRequestRepromptsOnInvalidName(t *testing.T) {
	SetContext(config.NewDefaultConfig(), t.TempDir())

	// The first pass enters an invalid name; the wizard reports the
	// error and collects everything again.
	prompter := &prompt.ScriptedPrompter{
		Inputs:   []string{"bad name", "", "100", "good_name", "", "100"},
		Confirms: []bool{false, false},
	}

	req, err := collectRequest(prompter, "", "", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, "good_name", req.ProjectName)
	assert.False(t, req.IncludeExample)
}

func TestCollectRequestFlagDrivenRejects(t *testing.T) {
	SetContext(config.NewDefaultConfig(), t.TempDir())

	// Flag-driven invocations reject bad input instead of re-prompting
	// or silently falling back.
	_, err := collectRequest(prompt.DeclineAll{}, "blinker", "", "not-a-number", false, true)

	var verr *scaffold.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "clock frequency", verr.Field)
}

func TestCollectRequestWizardFrequencyFallback(t *testing.T) {
	SetContext(config.NewDefaultConfig(), t.TempDir())

	// The wizard path falls back to the default frequency on a typo
	// rather than failing the whole request.
	prompter := &prompt.ScriptedPrompter{
		Inputs: []string{"blinker", "", "fast"},
	}

	req, err := collectRequest(prompter, "", "", "", false, false)
	require.NoError(t, err)
	assert.Equal(t, scaffold.DefaultFrequencyMHz, req.ClockFrequencyMHz)
}
