// SPDX-License-Identifier: Apache-2.0

package scaffold

import (
	"fmt"
	"strconv"

	"github.com/chipforge-eda/chipforge/internal/core/config"
	"github.com/chipforge-eda/chipforge/internal/core/format"
	"github.com/chipforge-eda/chipforge/internal/core/template"
)

// RenderedFile binds generated content to its project-relative path.
type RenderedFile struct {
	Path    string
	Content []byte
}

// formatNs renders a nanosecond quantity with two decimals, the
// convention used throughout the generated constraint files.
func formatNs(ns float64) string {
	return strconv.FormatFloat(ns, 'f', 2, 64)
}

// TemplateVars builds the substitution map for a request: the request
// fields, the derived timing values, and the tool locations the
// generated Makefile references.
func TemplateVars(req Request, cfg *config.Config) map[string]interface{} {
	period := 1000.0 / req.ClockFrequencyMHz
	return map[string]interface{}{
		"ProjectName":        req.ProjectName,
		"TopModule":          req.TopModule,
		"ClockFrequencyMHz":  strconv.FormatFloat(req.ClockFrequencyMHz, 'f', -1, 64),
		"ClockPeriodNs":      formatNs(period),
		"ClockUncertaintyNs": formatNs(period * 0.05),
		"IODelayNs":          formatNs(period * 0.20),
		"OpenLaneDir":        cfg.OpenLaneDir(),
		"OpenLaneImage":      cfg.OpenLaneImage,
		"PDKRoot":            cfg.PDKRoot,
	}
}

// RenderTemplates renders every registered template plus the per-target
// configuration records, in a deterministic order. Substitution is pure
// text replacement; nothing is evaluated.
func RenderTemplates(registry *template.Registry, req Request, cfg *config.Config) ([]RenderedFile, error) {
	vars := TemplateVars(req, cfg)

	var files []RenderedFile
	for _, tmpl := range registry.Templates() {
		content, err := template.ProcessString(tmpl.Body, vars)
		if err != nil {
			return nil, fmt.Errorf("error rendering template %s: %w", tmpl.Name, err)
		}

		path, err := template.ProcessString(tmpl.TargetPath, vars)
		if err != nil {
			return nil, fmt.Errorf("error rendering target path for %s: %w", tmpl.Name, err)
		}

		files = append(files, RenderedFile{Path: string(path), Content: content})
	}

	// One flow configuration record per fabrication target.
	for _, target := range TargetIDs() {
		record := TargetConfig(target, req)
		data, err := format.MarshalJSON(record)
		if err != nil {
			return nil, fmt.Errorf("error marshaling %s config: %w", target, err)
		}
		files = append(files, RenderedFile{Path: TargetConfigPath(target), Content: data})
	}

	return files, nil
}
