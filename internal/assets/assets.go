// SPDX-License-Identifier: Apache-2.0

// Package assets embeds the scaffold templates and declares their
// variable contracts. Registration validates every template body, so a
// placeholder typo fails at startup rather than mid-scaffold.
package assets

import (
	"embed"
	"fmt"

	"github.com/chipforge-eda/chipforge/internal/core/template"
)

//go:embed templates/*
var embeddedFiles embed.FS

// commonVars are the variables every rendering receives.
var commonVars = []string{
	"ProjectName", "TopModule", "ClockFrequencyMHz",
	"ClockPeriodNs", "ClockUncertaintyNs", "IODelayNs",
	"OpenLaneDir", "OpenLaneImage", "PDKRoot",
}

type descriptor struct {
	name        string
	file        string
	targetPath  string
	requires    []string
	exampleOnly bool
}

var descriptors = []descriptor{
	{
		name:       "makefile",
		file:       "templates/Makefile.tmpl",
		targetPath: "Makefile",
		requires:   []string{"ProjectName", "TopModule", "OpenLaneDir", "OpenLaneImage", "PDKRoot"},
	},
	{
		name:       "constraints",
		file:       "templates/constraints.sdc.tmpl",
		targetPath: "constraints/{{.TopModule}}.sdc",
		requires:   []string{"TopModule", "ClockFrequencyMHz", "ClockPeriodNs", "ClockUncertaintyNs", "IODelayNs"},
	},
	{
		name:       "readme",
		file:       "templates/README.md.tmpl",
		targetPath: "README.md",
		requires:   []string{"ProjectName", "TopModule", "ClockFrequencyMHz", "ClockPeriodNs"},
	},
	{
		name:       "gitignore",
		file:       "templates/gitignore.tmpl",
		targetPath: ".gitignore",
	},
	{
		name:        "example-counter",
		file:        "templates/counter.v.tmpl",
		targetPath:  "rtl/counter.v",
		exampleOnly: true,
	},
	{
		name:        "example-top",
		file:        "templates/top.v.tmpl",
		targetPath:  "rtl/{{.TopModule}}.v",
		requires:    []string{"TopModule"},
		exampleOnly: true,
	},
	{
		name:        "example-testbench",
		file:        "templates/counter_tb.v.tmpl",
		targetPath:  "tb/{{.TopModule}}_tb.v",
		requires:    []string{"TopModule", "ClockPeriodNs"},
		exampleOnly: true,
	},
}

// Registry builds the template registry for a scaffold run. Example
// templates are included only when requested.
func Registry(includeExample bool) (*template.Registry, error) {
	registry := template.NewRegistry()

	for _, d := range descriptors {
		if d.exampleOnly && !includeExample {
			continue
		}

		body, err := embeddedFiles.ReadFile(d.file)
		if err != nil {
			return nil, fmt.Errorf("error reading embedded template %s: %w", d.file, err)
		}

		err = registry.Register(template.Template{
			Name:         d.name,
			TargetPath:   d.targetPath,
			Body:         string(body),
			Requires:     d.requires,
			OptionalVars: commonVars,
		})
		if err != nil {
			return nil, fmt.Errorf("error registering template %s: %w", d.name, err)
		}
	}

	return registry, nil
}
