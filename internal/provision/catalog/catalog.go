// SPDX-License-Identifier: Apache-2.0

// Package catalog declares the fixed list of install steps that bring a
// host up to a working open-source ASIC toolchain: base packages, a
// simulator, a container runtime, the flow repository, and the
// technology datasets.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/models"
	"github.com/chipforge-eda/chipforge/internal/executor"
)

// aptInstall runs a package-manager install for the given packages.
func aptInstall(verbose bool, packages ...string) error {
	args := append([]string{"apt-get", "install", "-y"}, packages...)
	_, err := executor.NewCommandExecutor("sudo", args...).
		WithEnvironment("DEBIAN_FRONTEND=noninteractive").
		WithVerbose(verbose).
		Execute()
	if err != nil {
		return fmt.Errorf("package install failed: %w", err)
	}
	return nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Steps returns the provisioning step list in execution order. Steps
// are declared once per invocation and never mutated; every check is a
// pure probe, so re-running after an abort resumes at the failed step.
func Steps(cfg *config.Config, verbose bool) []models.InstallStep {
	openlaneDir := cfg.OpenLaneDir()
	pdkMarker := filepath.Join(cfg.PDKRoot, "sky130A")

	return []models.InstallStep{
		{
			ID:          "apt-update",
			Description: "refresh the package index",
			When:        "host.os == 'linux'",
			// The index refresh leaves no probe-able artifact, so the
			// step runs on every invocation of an unsatisfied list.
			Check: func() (bool, error) { return false, nil },
			Action: func() error {
				_, err := executor.NewCommandExecutor("sudo", "apt-get", "update").
					WithVerbose(verbose).Execute()
				return err
			},
			Verify: func() (bool, error) { return true, nil },
		},
		{
			ID:          "base-tools",
			Description: "install git, make, python3 and curl",
			When:        "host.os == 'linux'",
			DependsOn:   []string{"apt-update"},
			Check: func() (bool, error) {
				return executor.CommandExists("git") &&
					executor.CommandExists("make") &&
					executor.CommandExists("python3") &&
					executor.CommandExists("curl"), nil
			},
			Action: func() error {
				return aptInstall(verbose, "git", "make", "python3", "python3-pip", "curl")
			},
			Verify: func() (bool, error) {
				return executor.CommandExists("git") && executor.CommandExists("make"), nil
			},
		},
		{
			ID:          "simulator",
			Description: "install Icarus Verilog and GTKWave",
			When:        "host.os == 'linux'",
			DependsOn:   []string{"apt-update"},
			Check: func() (bool, error) {
				return executor.CommandExists("iverilog") && executor.CommandExists("gtkwave"), nil
			},
			Action: func() error {
				return aptInstall(verbose, "iverilog", "gtkwave")
			},
			Verify: func() (bool, error) {
				// A functional probe, not just PATH presence.
				return executor.Probe("iverilog", "-V"), nil
			},
		},
		{
			ID:          "layout-viewer",
			Description: "install KLayout for viewing generated layouts",
			When:        "host.os == 'linux'",
			Optional:    true,
			DependsOn:   []string{"apt-update"},
			Check: func() (bool, error) {
				return executor.CommandExists("klayout"), nil
			},
			Action: func() error {
				return aptInstall(verbose, "klayout")
			},
			Verify: func() (bool, error) {
				return executor.CommandExists("klayout"), nil
			},
		},
		{
			ID:          "container-runtime",
			Description: "install the Docker engine",
			When:        "host.os == 'linux'",
			DependsOn:   []string{"apt-update"},
			Check: func() (bool, error) {
				return executor.CommandExists("docker"), nil
			},
			Action: func() error {
				return aptInstall(verbose, "docker.io")
			},
			Verify: func() (bool, error) {
				// The binary being present is not enough; the daemon
				// must answer.
				return executor.Probe("docker", "info"), nil
			},
		},
		{
			ID:          "openlane-checkout",
			Description: fmt.Sprintf("clone the flow repository into %s", openlaneDir),
			DependsOn:   []string{"base-tools"},
			Check: func() (bool, error) {
				return pathExists(filepath.Join(openlaneDir, "Makefile")), nil
			},
			Action: func() error {
				if err := os.MkdirAll(cfg.ToolsDir, 0755); err != nil {
					return fmt.Errorf("error creating tools directory: %w", err)
				}
				_, err := executor.NewCommandExecutor("git", "clone", "--depth", "1", cfg.OpenLaneRepo, openlaneDir).
					WithVerbose(verbose).Execute()
				return err
			},
			Verify: func() (bool, error) {
				return pathExists(filepath.Join(openlaneDir, "Makefile")), nil
			},
		},
		{
			ID:          "pdk-volume",
			Description: fmt.Sprintf("build the technology datasets under %s", cfg.PDKRoot),
			DependsOn:   []string{"openlane-checkout", "container-runtime"},
			Check: func() (bool, error) {
				return pathExists(pdkMarker), nil
			},
			Action: func() error {
				if err := os.MkdirAll(cfg.PDKRoot, 0755); err != nil {
					return fmt.Errorf("error creating PDK root: %w", err)
				}
				_, err := executor.NewCommandExecutor("make", "pdk").
					WithWorkingDir(openlaneDir).
					WithEnvironment("PDK_ROOT=" + cfg.PDKRoot).
					WithVerbose(verbose).
					Execute()
				return err
			},
			Verify: func() (bool, error) {
				return pathExists(pdkMarker), nil
			},
		},
		{
			ID:          "openlane-image",
			Description: fmt.Sprintf("pre-pull the %s container image", cfg.OpenLaneImage),
			Optional:    true,
			DependsOn:   []string{"container-runtime"},
			Check: func() (bool, error) {
				return executor.Probe("docker", "image", "inspect", cfg.OpenLaneImage), nil
			},
			Action: func() error {
				_, err := executor.NewCommandExecutor("docker", "pull", cfg.OpenLaneImage).
					WithVerbose(verbose).Execute()
				return err
			},
			Verify: func() (bool, error) {
				return executor.Probe("docker", "image", "inspect", cfg.OpenLaneImage), nil
			},
		},
	}
}
