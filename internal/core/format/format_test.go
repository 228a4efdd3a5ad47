// SPDX-License-Identifier: Apache-2.0

package format_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chipforge-eda/chipforge/internal/core/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseData(t *testing.T) {
	type record struct {
		Name   string  `yaml:"name" json:"name"`
		Period float64 `yaml:"period" json:"period"`
	}

	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{name: "yaml", data: "name: blinker\nperiod: 20.0\n"},
		{name: "json", data: `{"name": "blinker", "period": 20.0}`},
		{name: "garbage", data: "{not valid: either[", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out record
			err := format.ParseData([]byte(tt.data), &out)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "blinker", out.Name)
				assert.Equal(t, 20.0, out.Period)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tools_dir: /opt/tools\n"), 0644))

	var out map[string]interface{}
	require.NoError(t, format.ParseFile(path, &out))
	assert.Equal(t, "/opt/tools", out["tools_dir"])

	err := format.ParseFile(filepath.Join(tempDir, "missing.yaml"), &out)
	assert.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	data, err := format.MarshalJSON(map[string]interface{}{
		"DESIGN_NAME":  "blinker",
		"CLOCK_PERIOD": 20.0,
	})
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "\"DESIGN_NAME\": \"blinker\"")
	assert.True(t, text[len(text)-1] == '\n', "records end with a newline")
}

func TestWriteYAML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "out.yaml")

	require.NoError(t, format.WriteYAML(path, map[string]string{"name": "chip"}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "name: chip")
}

func TestIsYAMLFile(t *testing.T) {
	assert.True(t, format.IsYAMLFile("config.yaml"))
	assert.True(t, format.IsYAMLFile("config.YML"))
	assert.False(t, format.IsYAMLFile("config.json"))
}
