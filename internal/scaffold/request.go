// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/chipforge-eda/chipforge/internal/core/schema"
)

var (
	projectNameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	topModuleRegex   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// FrequencyPolicy decides what happens when the clock frequency input
// does not parse: reject with a typed error, or fall back to the
// documented default with a notice. The wizard uses fallback; flag-driven
// invocations use reject so typos are not silently masked.
type FrequencyPolicy int

const (
	FrequencyReject FrequencyPolicy = iota
	FrequencyFallback
)

// DefaultFrequencyMHz is the fallback clock frequency.
const DefaultFrequencyMHz = 100.0

// ValidationError names the offending field so non-interactive callers
// can report it precisely and interactive callers can re-prompt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Request is a validated, immutable scaffold request.
type Request struct {
	ProjectName       string
	TopModule         string
	ClockFrequencyMHz float64
	IncludeExample    bool
}

// ClockPeriodNs returns the derived clock period in nanoseconds,
// formatted with two decimals (100 MHz -> "10.00").
func (r Request) ClockPeriodNs() string {
	return strconv.FormatFloat(1000.0/r.ClockFrequencyMHz, 'f', 2, 64)
}

// requestSchema is the JSON schema the raw inputs are validated against
// before any filesystem mutation.
var requestSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"project_name", "clock_frequency_mhz"},
	"properties": map[string]interface{}{
		"project_name": map[string]interface{}{
			"type":      "string",
			"pattern":   "^[A-Za-z0-9_-]+$",
			"minLength": 1,
		},
		"top_module": map[string]interface{}{
			"type":    "string",
			"pattern": "^[A-Za-z0-9_]+$",
		},
		"clock_frequency_mhz": map[string]interface{}{
			"type":    "number",
			"minimum": 0,
		},
		"include_example": map[string]interface{}{
			"type": "boolean",
		},
	},
}

// RawRequest carries the unvalidated inputs as collected from the
// wizard or command-line flags.
type RawRequest struct {
	ProjectName    string
	TopModule      string
	Frequency      string
	IncludeExample bool

	// ParentDir is where the project directory will be created.
	ParentDir string

	OnInvalidFrequency FrequencyPolicy
}

// ValidateRequest enforces the name pattern, the target-directory
// non-existence rule and the frequency bounds, creating no filesystem
// entries. Frequency parse failures follow the request's policy.
func ValidateRequest(raw RawRequest) (Request, error) {
	if raw.ProjectName == "" {
		return Request{}, &ValidationError{Field: "project name", Reason: "must not be empty"}
	}
	if !projectNameRegex.MatchString(raw.ProjectName) {
		return Request{}, &ValidationError{
			Field:  "project name",
			Reason: fmt.Sprintf("'%s' contains characters outside [A-Za-z0-9_-]", raw.ProjectName),
		}
	}

	targetDir := filepath.Join(raw.ParentDir, raw.ProjectName)
	if _, err := os.Stat(targetDir); err == nil {
		return Request{}, &ValidationError{
			Field:  "project name",
			Reason: fmt.Sprintf("directory '%s' already exists", targetDir),
		}
	}

	freq, err := parseFrequency(raw.Frequency, raw.OnInvalidFrequency)
	if err != nil {
		return Request{}, err
	}

	// Project names may carry dashes (they become directory names), but
	// the top module becomes a Verilog identifier, where dashes are
	// illegal. A defaulted top is sanitized; an explicit one must already
	// be a legal identifier.
	top := raw.TopModule
	if top == "" {
		top = DefaultTopModule(raw.ProjectName)
	} else if !topModuleRegex.MatchString(top) {
		return Request{}, &ValidationError{
			Field:  "top module",
			Reason: fmt.Sprintf("'%s' contains characters outside [A-Za-z0-9_]", top),
		}
	}

	req := Request{
		ProjectName:       raw.ProjectName,
		TopModule:         top,
		ClockFrequencyMHz: freq,
		IncludeExample:    raw.IncludeExample,
	}

	// Structural validation against the embedded schema is the last
	// gate before the request is considered immutable.
	params := map[string]interface{}{
		"project_name":        req.ProjectName,
		"top_module":          req.TopModule,
		"clock_frequency_mhz": req.ClockFrequencyMHz,
		"include_example":     req.IncludeExample,
	}
	if err := schema.ValidateParams(requestSchema, params); err != nil {
		return Request{}, &ValidationError{Field: "request", Reason: err.Error()}
	}

	return req, nil
}

// DefaultTopModule derives the default top module identifier from a
// project name, mapping dashes to underscores.
func DefaultTopModule(projectName string) string {
	return strings.ReplaceAll(projectName, "-", "_")
}

// parseFrequency parses the frequency input, applying the configured
// invalid-input policy. An empty input always takes the default.
func parseFrequency(input string, policy FrequencyPolicy) (float64, error) {
	if input == "" {
		return DefaultFrequencyMHz, nil
	}

	freq, err := strconv.ParseFloat(input, 64)
	if err != nil || freq <= 0 {
		if policy == FrequencyFallback {
			fmt.Printf("Invalid clock frequency '%s', using default %g MHz\n", input, DefaultFrequencyMHz)
			return DefaultFrequencyMHz, nil
		}
		return 0, &ValidationError{
			Field:  "clock frequency",
			Reason: fmt.Sprintf("'%s' is not a positive number", input),
		}
	}

	return freq, nil
}
