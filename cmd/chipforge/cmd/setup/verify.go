// SPDX-License-Identifier: Apache-2.0

package setup

import (
	"fmt"
	"sort"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/provision/catalog"
	"github.com/chipforge-eda/chipforge/internal/provision/runner"

	"github.com/spf13/cobra"
)

// newVerifyCmd creates the `setup verify` command. It re-runs every
// step's verification probe independent of the idempotency checks,
// answering whether installation truly succeeded rather than whether it
// was attempted.
func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify every toolchain component independently",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg == nil {
				cfg = config.NewDefaultConfig()
			}

			steps := catalog.Steps(cfg, false)
			report := runner.VerifyAll(steps)

			required := make(map[string]bool, len(steps))
			ids := make([]string, 0, len(report))
			for _, step := range steps {
				required[step.ID] = !step.Optional
				ids = append(ids, step.ID)
			}
			sort.Strings(ids)

			failures := 0
			for _, id := range ids {
				status := "ok"
				if !report[id] {
					status = "MISSING"
					if required[id] {
						failures++
					} else {
						status = "missing (optional)"
					}
				}
				fmt.Printf("  %-20s %s\n", id, status)
			}

			if failures > 0 {
				return fmt.Errorf("%d required components unverified; run 'chipforge setup'", failures)
			}

			fmt.Println("All required components verified.")
			return nil
		},
	}
}
