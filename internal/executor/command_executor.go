// SPDX-License-Identifier: Apache-2.0

package executor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// CommandExecutor runs one external command, the only kind of side
// effect provisioning actions perform.
type CommandExecutor struct {
	command     string
	args        []string
	workingDir  string
	environment []string
	verbose     bool
	quiet       bool
}

// CommandResult holds the result of command execution
type CommandResult struct {
	Output     []byte
	Error      error
	ExitStatus int
}

// NewCommandExecutor creates a new command executor
func NewCommandExecutor(command string, args ...string) *CommandExecutor {
	return &CommandExecutor{
		command: command,
		args:    args,
	}
}

// WithWorkingDir sets the working directory
func (e *CommandExecutor) WithWorkingDir(dir string) *CommandExecutor {
	e.workingDir = dir
	return e
}

// WithEnvironment appends environment variables to the inherited set
func (e *CommandExecutor) WithEnvironment(env ...string) *CommandExecutor {
	if len(env) > 0 {
		e.environment = append(os.Environ(), env...)
	}
	return e
}

// WithVerbose streams command output to the terminal as well as capturing it
func (e *CommandExecutor) WithVerbose(verbose bool) *CommandExecutor {
	e.verbose = verbose
	return e
}

// WithQuiet suppresses the "Executing:" announcement, used by pure
// probe commands run from idempotency checks.
func (e *CommandExecutor) WithQuiet(quiet bool) *CommandExecutor {
	e.quiet = quiet
	return e
}

// Execute runs the command and returns its output
func (e *CommandExecutor) Execute() (*CommandResult, error) {
	cmd := exec.Command(e.command, e.args...)

	var stdout, stderr bytes.Buffer

	if e.verbose {
		cmd.Stdout = io.MultiWriter(&stdout, os.Stdout)
		cmd.Stderr = io.MultiWriter(&stderr, os.Stderr)
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if e.workingDir != "" {
		cmd.Dir = e.workingDir
	}

	if len(e.environment) > 0 {
		cmd.Env = e.environment
	}

	if !e.quiet {
		fmt.Printf("Executing: %s %s\n", e.command, strings.Join(e.args, " "))
	}

	err := cmd.Run()

	result := &CommandResult{
		Output: stdout.Bytes(),
		Error:  err,
	}

	if exitError, ok := err.(*exec.ExitError); ok {
		result.ExitStatus = exitError.ExitCode()
	}

	return result, err
}

// CommandExists reports whether a binary is resolvable on PATH, the
// equivalent of a `command -v` probe.
func CommandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Probe runs a command silently and reports whether it exited zero.
// Used for functional verification probes like `docker info`.
func Probe(command string, args ...string) bool {
	_, err := NewCommandExecutor(command, args...).WithQuiet(true).Execute()
	return err == nil
}
