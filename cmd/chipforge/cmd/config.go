// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chipforge-eda/chipforge/internal/core/config"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the `chipforge config` command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the chipforge configuration file",
	}

	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the active configuration to .chipforge/config.yaml",
		Long: `Init writes the active configuration (defaults, or whatever --config
loaded) to .chipforge/config.yaml in the project directory so it can be
edited. An existing file is never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(projectDir, config.DefaultConfigDir, config.DefaultConfigFileName)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %s already exists", path)
			}

			if err := config.SaveConfig(projectDir, cfg); err != nil {
				return err
			}

			fmt.Printf("Wrote %s\n", path)
			return nil
		},
	}
}
