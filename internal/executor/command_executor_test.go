// SPDX-License-Identifier: Apache-2.0

package executor_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/chipforge-eda/chipforge/internal/executor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandExecutor(t *testing.T) {
	// Skip tests if running on Windows because the commands are different
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	tempDir := t.TempDir()

	tests := []struct {
		name        string
		command     string
		args        []string
		workingDir  string
		shouldError bool
		outputCheck func(t *testing.T, result *executor.CommandResult)
	}{
		{
			name:    "echo command",
			command: "echo",
			args:    []string{"hello"},
			outputCheck: func(t *testing.T, result *executor.CommandResult) {
				assert.Contains(t, string(result.Output), "hello")
			},
		},
		{
			name:       "command with working directory",
			command:    "pwd",
			workingDir: tempDir,
			outputCheck: func(t *testing.T, result *executor.CommandResult) {
				assert.Contains(t, string(result.Output), tempDir)
			},
		},
		{
			name:        "failing command",
			command:     "false",
			shouldError: true,
			outputCheck: func(t *testing.T, result *executor.CommandResult) {
				assert.NotZero(t, result.ExitStatus)
			},
		},
		{
			name:        "missing command",
			command:     "definitely-not-a-real-binary",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := executor.NewCommandExecutor(tt.command, tt.args...)
			if tt.workingDir != "" {
				e = e.WithWorkingDir(tt.workingDir)
			}

			result, err := e.Execute()

			if tt.shouldError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			if tt.outputCheck != nil && result != nil {
				tt.outputCheck(t, result)
			}
		})
	}
}

func TestCommandExecutorEnvironment(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	result, err := executor.NewCommandExecutor("sh", "-c", "echo $CHIPFORGE_TEST_VAR").
		WithEnvironment("CHIPFORGE_TEST_VAR=present").
		Execute()

	require.NoError(t, err)
	assert.Equal(t, "present", strings.TrimSpace(string(result.Output)))
}

func TestCommandExists(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	assert.True(t, executor.CommandExists("sh"))
	assert.False(t, executor.CommandExists("definitely-not-a-real-binary"))
}

func TestProbe(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	assert.True(t, executor.Probe("true"))
	assert.False(t, executor.Probe("false"))
	assert.False(t, executor.Probe("definitely-not-a-real-binary"))
}
