// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"fmt"
	"os"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/models"
	"github.com/chipforge-eda/chipforge/internal/core/prompt"
	"github.com/chipforge-eda/chipforge/internal/provision/catalog"
	"github.com/chipforge-eda/chipforge/internal/provision/preflight"
	"github.com/chipforge-eda/chipforge/internal/provision/runner"

	"github.com/spf13/cobra"
)

var cfg *config.Config

// SetContext supplies the configuration loaded by the root command.
func SetContext(c *config.Config) {
	cfg = c
}

// NewSetupCmd creates the provisioning command tree.
func NewSetupCmd() *cobra.Command {
	var (
		assumeYes     bool
		dryRun        bool
		verbose       bool
		skipPreflight bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision this machine with the ASIC toolchain",
		Long: `Setup runs the ordered install step list: base packages, simulator,
container runtime, flow repository and technology datasets. Each step is
checked before it runs, so re-running setup skips everything already in
place and resumes after a failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				cfg = config.NewDefaultConfig()
			}

			facts, err := gatherFacts(skipPreflight)
			if err != nil {
				return err
			}

			options := models.ExecutionOptions{
				DryRun:         dryRun,
				VerboseLogging: verbose,
				Interactive:    !assumeYes,
			}

			var prompter prompt.Prompter
			if assumeYes {
				prompter = prompt.DeclineAll{}
			} else {
				prompter = prompt.NewTerminalPrompter(os.Stdin, os.Stdout)
			}

			r, err := runner.NewRunner(prompter, facts, options)
			if err != nil {
				return err
			}

			steps := catalog.Steps(cfg, verbose)
			run, err := r.RunSteps(steps)
			if err != nil {
				return err
			}
			if run.Failed() {
				return fmt.Errorf("provisioning incomplete; see summary above")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "non-interactive mode: decline all optional steps")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be installed without doing it")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "stream tool output")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "skip the memory/disk resource check")

	cmd.AddCommand(newVerifyCmd())

	return cmd
}

// gatherFacts runs the resource preflight and returns the host fact map
// consumed by step conditions.
func gatherFacts(skipPreflight bool) (map[string]interface{}, error) {
	caps, err := preflight.Gather(".")
	if err != nil {
		return nil, err
	}

	if !skipPreflight {
		if err := preflight.Check(caps); err != nil {
			return nil, err
		}
	}

	facts := caps.Facts()
	fmt.Printf("Host: %s/%s, %.1f GiB memory, %.1f GiB free disk\n",
		facts["os"], facts["arch"], facts["mem_gb"], facts["disk_gb"])

	return facts, nil
}
