// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"testing"

	"github.com/chipforge-eda/chipforge/internal/core/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParams(t *testing.T) {
	requestSchema := map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"project_name"},
		"properties": map[string]interface{}{
			"project_name": map[string]interface{}{
				"type":    "string",
				"pattern": "^[A-Za-z0-9_-]+$",
			},
			"clock_frequency_mhz": map[string]interface{}{
				"type": "number",
			},
			"include_example": map[string]interface{}{
				"type": "boolean",
			},
		},
	}

	tests := []struct {
		name    string
		params  map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid request",
			params: map[string]interface{}{
				"project_name":        "blinker",
				"clock_frequency_mhz": 50.0,
				"include_example":     true,
			},
		},
		{
			name:    "missing required field",
			params:  map[string]interface{}{"clock_frequency_mhz": 50.0},
			wantErr: true,
		},
		{
			name: "pattern violation",
			params: map[string]interface{}{
				"project_name": "bad name!",
			},
			wantErr: true,
		},
		{
			name: "wrong type",
			params: map[string]interface{}{
				"project_name":        "blinker",
				"clock_frequency_mhz": "fast",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.ValidateParams(requestSchema, tt.params)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := map[string]interface{}{
		"CLOCK_PORT":     "clk",
		"SYNTH_STRATEGY": "AREA 0",
	}
	overrides := map[string]interface{}{
		"SYNTH_STRATEGY": "DELAY 1",
		"DIE_AREA":       "0 0 500 500",
	}

	merged := schema.MergeWithDefaults(overrides, defaults)

	assert.Equal(t, "clk", merged["CLOCK_PORT"], "defaults survive")
	assert.Equal(t, "DELAY 1", merged["SYNTH_STRATEGY"], "overrides win")
	assert.Equal(t, "0 0 500 500", merged["DIE_AREA"])

	// Neither input map is modified.
	require.Equal(t, "AREA 0", defaults["SYNTH_STRATEGY"])
	_, exists := overrides["CLOCK_PORT"]
	require.False(t, exists)
}
