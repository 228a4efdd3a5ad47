// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chipforge-eda/chipforge/internal/core/format"
)

// Constants for default paths
const (
	DefaultConfigDir      = ".chipforge"
	DefaultConfigFileName = "config.yaml"
	DefaultToolsDir       = "~/.chipforge/tools"
)

// Config holds the global application configuration
type Config struct {
	// ToolsDir is where provisioning clones the flow repository and
	// keeps the technology datasets.
	ToolsDir string `yaml:"tools_dir"`

	// Flow toolchain coordinates
	OpenLaneRepo  string `yaml:"openlane_repo"`
	OpenLaneImage string `yaml:"openlane_image"`
	PDKRoot       string `yaml:"pdk_root"`

	// Wizard defaults
	DefaultFrequencyMHz float64 `yaml:"default_frequency_mhz"`
}

// NewDefaultConfig creates a default configuration
func NewDefaultConfig() *Config {
	toolsDir := ExpandPathWithTilde(DefaultToolsDir)
	return &Config{
		ToolsDir:            toolsDir,
		OpenLaneRepo:        "https://github.com/The-OpenROAD-Project/OpenLane.git",
		OpenLaneImage:       "efabless/openlane:latest",
		PDKRoot:             filepath.Join(toolsDir, "pdks"),
		DefaultFrequencyMHz: 100,
	}
}

// OpenLaneDir returns the path the flow repository is cloned into.
func (c *Config) OpenLaneDir() string {
	return filepath.Join(c.ToolsDir, "OpenLane")
}

// LoadConfig loads configuration from projectDir/.chipforge/config.yaml,
// layering file values over the defaults.
func LoadConfig(projectDir string) (*Config, error) {
	return LoadConfigFile(filepath.Join(projectDir, DefaultConfigDir, DefaultConfigFileName))
}

// LoadConfigFile loads configuration from an explicit path, layering
// file values over the defaults. YAML and JSON files are accepted.
func LoadConfigFile(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := format.ParseFile(path, cfg); err != nil {
		return nil, fmt.Errorf("error loading config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to projectDir/.chipforge/config.yaml.
func SaveConfig(projectDir string, cfg *Config) error {
	configDir := filepath.Join(projectDir, DefaultConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	return format.WriteYAML(filepath.Join(configDir, DefaultConfigFileName), cfg)
}

// ExpandPathWithTilde expands ~ to the user home directory.
// It respects the CHIPFORGE_HOME environment variable for testing purposes.
func ExpandPathWithTilde(path string) string {
	if path == "~" {
		home := getHomeDir()
		if home == "" {
			return path // Return original if can't expand
		}
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home := getHomeDir()
		if home == "" {
			return path // Return original if can't expand
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// getHomeDir returns the home directory, respecting CHIPFORGE_HOME for testing
func getHomeDir() string {
	if chipforgeHome := os.Getenv("CHIPFORGE_HOME"); chipforgeHome != "" {
		return chipforgeHome
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "" // Return empty if can't determine
	}
	return home
}
