// SPDX-License-Identifier: Apache-2.0

package preflight_test

import (
	"testing"

	"github.com/chipforge-eda/chipforge/internal/provision/preflight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckThresholds(t *testing.T) {
	tests := []struct {
		name     string
		caps     preflight.Capabilities
		wantErr  bool
		resource string
	}{
		{
			name: "ample resources",
			caps: preflight.Capabilities{
				MemoryBytes:   16 << 30,
				FreeDiskBytes: 200 << 30,
			},
		},
		{
			name: "exactly at minimums",
			caps: preflight.Capabilities{
				MemoryBytes:   preflight.MinMemoryBytes,
				FreeDiskBytes: preflight.MinFreeDiskBytes,
			},
		},
		{
			name: "too little memory",
			caps: preflight.Capabilities{
				MemoryBytes:   4 << 30,
				FreeDiskBytes: 200 << 30,
			},
			wantErr:  true,
			resource: "memory",
		},
		{
			name: "too little disk",
			caps: preflight.Capabilities{
				MemoryBytes:   16 << 30,
				FreeDiskBytes: 20 << 30,
			},
			wantErr:  true,
			resource: "disk space",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := preflight.Check(tt.caps)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var envErr *preflight.EnvironmentError
			require.ErrorAs(t, err, &envErr)
			assert.Equal(t, tt.resource, envErr.Resource)

			// The error reports measured against required values.
			assert.Contains(t, envErr.Error(), "available")
			assert.Contains(t, envErr.Error(), "required")
		})
	}
}

func TestFacts(t *testing.T) {
	caps := preflight.Capabilities{
		OS:            "linux",
		Arch:          "amd64",
		MemoryBytes:   16 << 30,
		FreeDiskBytes: 100 << 30,
	}

	facts := caps.Facts()
	assert.Equal(t, "linux", facts["os"])
	assert.Equal(t, "amd64", facts["arch"])
	assert.Equal(t, 16.0, facts["mem_gb"])
	assert.Equal(t, 100.0, facts["disk_gb"])
}

func TestGatherReadsThisHost(t *testing.T) {
	caps, err := preflight.Gather(t.TempDir())
	if err != nil {
		t.Skipf("host readings unavailable: %v", err)
	}

	assert.NotZero(t, caps.MemoryBytes)
	assert.NotZero(t, caps.FreeDiskBytes)
	assert.NotEmpty(t, caps.OS)
}
