// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter abstracts interactive input so the engines can run headlessly
// in tests or with --yes on the command line.
type Prompter interface {
	// Confirm asks a yes/no question and returns the answer.
	// An empty response returns the default.
	Confirm(question string, defaultYes bool) (bool, error)

	// Input asks for a free-form value. An empty response returns the
	// default.
	Input(question, defaultValue string) (string, error)
}

// TerminalPrompter reads answers from an input stream and writes
// questions to an output stream, normally stdin/stdout.
type TerminalPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalPrompter creates a prompter over the given streams.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{reader: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question, rendering the default in the hint.
func (p *TerminalPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return false, fmt.Errorf("error reading input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	switch answer {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Input asks for a value, showing the default when one exists.
func (p *TerminalPrompter) Input(question, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("error reading input: %w", err)
	}

	value := strings.TrimSpace(line)
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}

// ScriptedPrompter replays canned answers in order; used in tests and
// available to any headless caller. Confirm answers that run out fall
// back to the question's default, mirroring a user pressing enter.
type ScriptedPrompter struct {
	Confirms []bool
	Inputs   []string

	confirmIdx int
	inputIdx   int
}

// Confirm returns the next scripted confirmation answer.
func (p *ScriptedPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	if p.confirmIdx >= len(p.Confirms) {
		return defaultYes, nil
	}
	answer := p.Confirms[p.confirmIdx]
	p.confirmIdx++
	return answer, nil
}

// Input returns the next scripted input answer.
func (p *ScriptedPrompter) Input(question, defaultValue string) (string, error) {
	if p.inputIdx >= len(p.Inputs) {
		return defaultValue, nil
	}
	value := p.Inputs[p.inputIdx]
	p.inputIdx++
	if value == "" {
		return defaultValue, nil
	}
	return value, nil
}

// DeclineAll is a non-interactive prompter that declines every
// confirmation and accepts every default; used with --yes.
type DeclineAll struct{}

// Confirm always declines.
func (DeclineAll) Confirm(question string, defaultYes bool) (bool, error) {
	return false, nil
}

// Input always accepts the default.
func (DeclineAll) Input(question, defaultValue string) (string, error) {
	return defaultValue, nil
}
