// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
)

// IOFailure reports the first path that could not be created or
// written. Files written earlier in the same call are left in place for
// manual inspection; a re-run for the same project name will then fail
// validation with directory-exists.
type IOFailure struct {
	Path string
	Err  error
}

func (e *IOFailure) Error() string {
	return fmt.Sprintf("error writing %s: %v", e.Path, e.Err)
}

func (e *IOFailure) Unwrap() error {
	return e.Err
}

// Materialize creates every layout directory first, then writes each
// rendered file exactly once, refusing paths that already exist. The
// whole call fails on the first problem so a partially-written project
// is never silently accepted as complete.
func Materialize(layout Layout, files []RenderedFile) error {
	for _, dir := range layout.Dirs {
		path := filepath.Join(layout.Root, dir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return &IOFailure{Path: path, Err: err}
		}
	}

	for _, file := range files {
		path := filepath.Join(layout.Root, file.Path)

		// O_EXCL enforces the write-exactly-once rule.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			return &IOFailure{Path: path, Err: err}
		}

		_, werr := f.Write(file.Content)
		cerr := f.Close()
		if werr != nil {
			return &IOFailure{Path: path, Err: werr}
		}
		if cerr != nil {
			return &IOFailure{Path: path, Err: cerr}
		}

		fmt.Printf("Created file: %s\n", path)
	}

	return nil
}
