// SPDX-License-Identifier: Apache-2.0

// Package scaffold materializes a new RTL project tree from a validated
// request: validation, directory layout, template rendering, and the
// refuse-to-overwrite write phase.
package scaffold

import (
	"fmt"

	"github.com/chipforge-eda/chipforge/internal/assets"
	"github.com/chipforge-eda/chipforge/internal/core/config"
)

// Generate runs the full scaffold pipeline for an already-validated
// request: build the layout, render every artifact, write the tree.
// All inputs are validated before the first side effect.
func Generate(parentDir string, req Request, cfg *config.Config) (Layout, error) {
	registry, err := assets.Registry(req.IncludeExample)
	if err != nil {
		return Layout{}, fmt.Errorf("error loading templates: %w", err)
	}

	layout := BuildLayout(parentDir, req)

	files, err := RenderTemplates(registry, req, cfg)
	if err != nil {
		return Layout{}, err
	}

	if err := Materialize(layout, files); err != nil {
		return layout, err
	}

	return layout, nil
}
