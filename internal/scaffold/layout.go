// SPDX-License-Identifier: Apache-2.0

package scaffold

import "path/filepath"

// Layout is the ordered set of directories created before any file is
// written. All paths are relative to the project root; creation is
// recursive, so ordering between entries does not matter.
type Layout struct {
	Root string
	Dirs []string
}

// BuildLayout is a deterministic function of the request producing the
// fixed directory set for a new project.
func BuildLayout(parentDir string, req Request) Layout {
	dirs := []string{
		"rtl",
		"tb",
		"include",
		"constraints",
		filepath.Join("sim", "waves"),
		filepath.Join("sim", "logs"),
	}

	// One build output area per fabrication target.
	for _, target := range TargetIDs() {
		dirs = append(dirs, filepath.Join("build", target))
	}

	dirs = append(dirs,
		"layout",
		"reports",
		"verification",
		"docs",
		"scripts",
		filepath.Join("ip", "third_party"),
		filepath.Join("ip", "custom"),
	)

	return Layout{
		Root: filepath.Join(parentDir, req.ProjectName),
		Dirs: dirs,
	}
}
