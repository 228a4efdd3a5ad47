// SPDX-License-Identifier: Apache-2.0

package project

import (
	"fmt"

	"github.com/chipforge-eda/chipforge/internal/core/format"
	"github.com/chipforge-eda/chipforge/internal/scaffold"

	"github.com/spf13/cobra"
)

// NewTargetsCmd creates the `chipforge targets` command, which lists
// the supported fabrication targets with their effective merged
// configuration defaults.
func NewTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List supported fabrication targets and their defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A representative request so derived fields render.
			req := scaffold.Request{
				ProjectName:       "example",
				TopModule:         "example",
				ClockFrequencyMHz: scaffold.DefaultFrequencyMHz,
			}

			for _, target := range scaffold.TargetIDs() {
				record := scaffold.TargetConfig(target, req)
				data, err := format.MarshalJSON(record)
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n%s\n", target, data)
			}
			return nil
		},
	}
}
