// SPDX-License-Identifier: Apache-2.0

package project

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/prompt"
	"github.com/chipforge-eda/chipforge/internal/scaffold"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	parentDir string
)

// SetContext supplies the configuration and working directory resolved
// by the root command.
func SetContext(c *config.Config, dir string) {
	cfg = c
	parentDir = dir
}

// NewNewCmd creates the `chipforge new` scaffold command.
func NewNewCmd() *cobra.Command {
	var (
		topModule      string
		frequency      string
		includeExample bool
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Scaffold a new RTL project",
		Long: `New creates a project directory with RTL/testbench areas, a Makefile,
per-target flow configurations, timing constraints and (optionally) an
example counter design. Existing paths are never overwritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				cfg = config.NewDefaultConfig()
			}
			if parentDir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("error getting current directory: %w", err)
				}
				parentDir = wd
			}

			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			var prompter prompt.Prompter
			if nonInteractive {
				prompter = prompt.DeclineAll{}
			} else {
				prompter = prompt.NewTerminalPrompter(os.Stdin, os.Stdout)
			}

			// Flags bypass the wizard; flag typos reject rather than
			// silently falling back.
			flagDriven := nonInteractive || cmd.Flags().Changed("freq") || cmd.Flags().Changed("top")

			req, err := collectRequest(prompter, name, topModule, frequency, includeExample, flagDriven)
			if err != nil {
				return err
			}

			layout, err := scaffold.Generate(parentDir, req, cfg)
			if err != nil {
				return err
			}

			fmt.Printf("\nProject '%s' created at %s\n", req.ProjectName, layout.Root)
			fmt.Printf("Top module %s, clock %g MHz (%s ns)\n",
				req.TopModule, req.ClockFrequencyMHz, req.ClockPeriodNs())
			fmt.Println("Run 'make help' inside the project for available targets.")
			return nil
		},
	}

	cmd.Flags().StringVar(&topModule, "top", "", "top module name (default: project name)")
	cmd.Flags().StringVar(&frequency, "freq", "", fmt.Sprintf("clock frequency in MHz (default: %g)", scaffold.DefaultFrequencyMHz))
	cmd.Flags().BoolVar(&includeExample, "example", false, "generate the example counter design")
	cmd.Flags().BoolVarP(&nonInteractive, "yes", "y", false, "non-interactive: use flags and defaults, no prompts")

	return cmd
}

// collectRequest gathers and validates the scaffold inputs. Interactive
// use re-prompts on validation failure; flag-driven use returns the
// typed rejection.
func collectRequest(prompter prompt.Prompter, name, top, freq string, example, flagDriven bool) (scaffold.Request, error) {
	policy := scaffold.FrequencyFallback
	if flagDriven {
		policy = scaffold.FrequencyReject
	}

	defaultFreq := scaffold.DefaultFrequencyMHz
	if cfg != nil && cfg.DefaultFrequencyMHz > 0 {
		defaultFreq = cfg.DefaultFrequencyMHz
	}

	for {
		var err error

		if name == "" {
			name, err = prompter.Input("Project name", "")
			if err != nil {
				return scaffold.Request{}, err
			}
		}

		if !flagDriven {
			if top == "" {
				top, err = prompter.Input("Top module name", scaffold.DefaultTopModule(name))
				if err != nil {
					return scaffold.Request{}, err
				}
			}
			if freq == "" {
				freq, err = prompter.Input("Clock frequency (MHz)", strconv.FormatFloat(defaultFreq, 'f', -1, 64))
				if err != nil {
					return scaffold.Request{}, err
				}
			}
			if !example {
				example, err = prompter.Confirm("Generate example counter design?", false)
				if err != nil {
					return scaffold.Request{}, err
				}
			}
		}

		req, err := scaffold.ValidateRequest(scaffold.RawRequest{
			ProjectName:        name,
			TopModule:          top,
			Frequency:          freq,
			IncludeExample:     example,
			ParentDir:          parentDir,
			OnInvalidFrequency: policy,
		})
		if err == nil {
			return req, nil
		}

		var verr *scaffold.ValidationError
		if flagDriven || !errors.As(err, &verr) {
			return scaffold.Request{}, err
		}

		// Interactive: report and re-prompt for everything.
		fmt.Printf("Error: %v\n", verr)
		name, top, freq, example = "", "", "", false
	}
}
