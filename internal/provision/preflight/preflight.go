// SPDX-License-Identifier: Apache-2.0

package preflight

import (
	"bufio"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Minimum host resources for the full flow. The technology datasets
// alone are tens of gigabytes, and synthesis is memory hungry.
const (
	MinMemoryBytes   = 8 << 30
	MinFreeDiskBytes = 50 << 30
)

const memInfoPath = "/proc/meminfo"

// Capabilities holds the measured host resources.
type Capabilities struct {
	OS            string
	Arch          string
	MemoryBytes   uint64
	FreeDiskBytes uint64
}

// Facts returns the capability readings as the fact map consumed by
// step conditions.
func (c Capabilities) Facts() map[string]interface{} {
	return map[string]interface{}{
		"os":      c.OS,
		"arch":    c.Arch,
		"mem_gb":  float64(c.MemoryBytes) / (1 << 30),
		"disk_gb": float64(c.FreeDiskBytes) / (1 << 30),
	}
}

// EnvironmentError reports a host resource below its required minimum,
// carrying the measured and required values.
type EnvironmentError struct {
	Resource string
	Measured uint64
	Required uint64
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("insufficient %s: %.1f GiB available, %.1f GiB required",
		e.Resource, float64(e.Measured)/(1<<30), float64(e.Required)/(1<<30))
}

// Gather measures host memory and free disk space under dir.
func Gather(dir string) (Capabilities, error) {
	caps := Capabilities{
		OS:   runtime.GOOS,
		Arch: runtime.GOARCH,
	}

	mem, err := readMemTotal(memInfoPath)
	if err != nil {
		return caps, fmt.Errorf("error reading host memory: %w", err)
	}
	caps.MemoryBytes = mem

	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return caps, fmt.Errorf("error reading free disk space for %s: %w", dir, err)
	}
	caps.FreeDiskBytes = stat.Bavail * uint64(stat.Bsize)

	return caps, nil
}

// Check fails closed when a measured resource is below its minimum.
func Check(caps Capabilities) error {
	if caps.MemoryBytes < MinMemoryBytes {
		return &EnvironmentError{Resource: "memory", Measured: caps.MemoryBytes, Required: MinMemoryBytes}
	}
	if caps.FreeDiskBytes < MinFreeDiskBytes {
		return &EnvironmentError{Resource: "disk space", Measured: caps.FreeDiskBytes, Required: MinFreeDiskBytes}
	}
	return nil
}

// readMemTotal parses the MemTotal line of a meminfo-format file.
func readMemTotal(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("malformed MemTotal line: %q", line)
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed MemTotal value: %w", err)
		}
		return kb * 1024, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("no MemTotal entry in %s", path)
}
