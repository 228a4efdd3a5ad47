// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigInitWritesFile(t *testing.T) {
	dir := t.TempDir()

	rootCmd.SetArgs([]string{"config", "init", "--project-dir", dir})
	require.NoError(t, rootCmd.Execute())

	path := filepath.Join(dir, config.DefaultConfigDir, config.DefaultConfigFileName)
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := config.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.DefaultFrequencyMHz)

	// A second init must not clobber the existing file.
	rootCmd.SetArgs([]string{"config", "init", "--project-dir", dir})
	err = rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestExplicitConfigFlag(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { configFile = "" })

	// An unknown extension is rejected before any parsing happens.
	rootCmd.SetArgs([]string{"targets", "--project-dir", dir, "--config", filepath.Join(dir, "config.toml")})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".yaml, .yml or .json")

	// A valid YAML path layers over the defaults.
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools_dir: /flag/tools\n"), 0644))

	rootCmd.SetArgs([]string{"targets", "--project-dir", dir, "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "/flag/tools", cfg.ToolsDir)
}
