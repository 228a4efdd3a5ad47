// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"path/filepath"

	"github.com/chipforge-eda/chipforge/internal/core/schema"
)

// Supported fabrication targets, in the order their build areas and
// configuration records are generated.
var targetOrder = []string{"sky130hd", "gf180mcuD"}

// TargetIDs returns the supported fabrication target identifiers.
func TargetIDs() []string {
	out := make([]string, len(targetOrder))
	copy(out, targetOrder)
	return out
}

// baseTargetConfig holds the flow settings shared by every target.
// Per-target records are produced by layering overrides on top, so a
// policy change here propagates to all targets.
var baseTargetConfig = map[string]interface{}{
	"CLOCK_PORT":                "clk",
	"SYNTH_STRATEGY":            "AREA 0",
	"FP_SIZING":                 "absolute",
	"QUIT_ON_TIMING_VIOLATIONS": false,
	"QUIT_ON_MAGIC_DRC":         false,
	"QUIT_ON_LVS_ERROR":         false,
}

// targetOverrides carries each target's geometry and density defaults.
var targetOverrides = map[string]map[string]interface{}{
	"sky130hd": {
		"PDK":               "sky130A",
		"STD_CELL_LIBRARY":  "sky130_fd_sc_hd",
		"DIE_AREA":          "0 0 500 500",
		"PL_TARGET_DENSITY": 0.55,
	},
	"gf180mcuD": {
		"PDK":               "gf180mcuD",
		"STD_CELL_LIBRARY":  "gf180mcu_fd_sc_mcu7t5v0",
		"DIE_AREA":          "0 0 600 600",
		"PL_TARGET_DENSITY": 0.50,
	},
}

// SourceFiles returns the RTL file list recorded in every target's
// configuration, in a fixed order shared by all targets.
func SourceFiles(req Request) []string {
	if req.IncludeExample {
		return []string{
			"rtl/counter.v",
			"rtl/" + req.TopModule + ".v",
		}
	}
	return []string{"rtl/" + req.TopModule + ".v"}
}

// TargetConfig builds the merged configuration record for one target.
// The record carries its own target identifier; the PDK field names the
// process kit, which is not the same thing (sky130hd runs on sky130A).
func TargetConfig(target string, req Request) map[string]interface{} {
	record := schema.MergeWithDefaults(targetOverrides[target], baseTargetConfig)
	record["TARGET"] = target
	record["DESIGN_NAME"] = req.TopModule
	record["VERILOG_FILES"] = SourceFiles(req)
	record["CLOCK_PERIOD"] = 1000.0 / req.ClockFrequencyMHz
	return record
}

// TargetConfigPath returns the project-relative path of a target's
// configuration record.
func TargetConfigPath(target string) string {
	return filepath.Join("build", target, "config.json")
}
