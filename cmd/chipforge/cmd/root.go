// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chipforge-eda/chipforge/cmd/chipforge/cmd/project"
	"github.com/chipforge-eda/chipforge/cmd/chipforge/cmd/setup"
	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/format"
	"github.com/chipforge-eda/chipforge/internal/version"

	"github.com/spf13/cobra"
)

var (
	// Configuration path
	configFile string

	// Project directory
	projectDir string

	// Loaded configuration
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "chipforge",
	Short: "ASIC toolchain provisioning and project scaffolding",
	Long: `Chipforge provisions a host with the open-source ASIC toolchain
(simulator, container runtime, flow repository, technology datasets) and
scaffolds new RTL projects with per-target flow configurations,
constraints and an optional example design.`,
	Version: fmt.Sprintf("%s (commit: %s)", version.Version, version.Commit),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Determine project directory
		var err error
		if projectDir == "" {
			projectDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("error getting current directory: %w", err)
			}
		} else {
			projectDir, err = filepath.Abs(projectDir)
			if err != nil {
				return fmt.Errorf("error resolving project directory: %w", err)
			}
		}

		if configFile != "" {
			// An explicit config path must exist and must parse.
			if !format.IsYAMLFile(configFile) && strings.ToLower(filepath.Ext(configFile)) != ".json" {
				return fmt.Errorf("config file %s must be a .yaml, .yml or .json file", configFile)
			}
			cfg, err = config.LoadConfigFile(configFile)
			if err != nil {
				return err
			}
		} else {
			// Try to load project config, but don't fail if it doesn't exist
			configPath := filepath.Join(projectDir, config.DefaultConfigDir, config.DefaultConfigFileName)

			if _, err := os.Stat(configPath); os.IsNotExist(err) {
				cfg = config.NewDefaultConfig()
			} else {
				cfg, err = config.LoadConfig(projectDir)
				if err != nil {
					fmt.Printf("Warning: Error loading configuration: %v\n", err)
					fmt.Println("Using default configuration instead.")
					cfg = config.NewDefaultConfig()
				}
			}
		}

		setup.SetContext(cfg)
		project.SetContext(cfg, projectDir)

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(setup.NewSetupCmd())
	rootCmd.AddCommand(project.NewNewCmd())
	rootCmd.AddCommand(project.NewTargetsCmd())
	rootCmd.AddCommand(newConfigCmd())

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is .chipforge/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project directory (default is current directory)")
}
