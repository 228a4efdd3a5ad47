// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"text/template"
)

var placeholderRegex = regexp.MustCompile(`\{\{[\s-]*\.([A-Za-z0-9_]+)`)

// Template is a named artifact descriptor: where the rendered file goes,
// the body with placeholder tokens, and the variables the body may use.
type Template struct {
	Name string
	// TargetPath is the output path relative to the project root. It may
	// itself contain placeholders.
	TargetPath string
	Body       string
	// Requires lists variables the body must reference. A required
	// variable the body never mentions is an authoring mistake caught at
	// registration, not at render time.
	Requires []string
	// OptionalVars lists variables the body may reference but is not
	// required to.
	OptionalVars []string
}

// Placeholders returns the distinct variable names referenced by the
// template body and target path, sorted.
func (t Template) Placeholders() []string {
	seen := make(map[string]bool)
	for _, src := range []string{t.Body, t.TargetPath} {
		for _, match := range placeholderRegex.FindAllStringSubmatch(src, -1) {
			seen[match[1]] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registry holds the fixed set of templates and checks them for
// authoring errors when they are added, before any request is processed.
type Registry struct {
	templates []Template
	byName    map[string]int
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register validates a template and adds it to the registry.
// Registration fails if the body does not parse, if a placeholder is not
// declared in Requires or OptionalVars, or if a required variable never
// appears in the body.
func (r *Registry) Register(t Template) error {
	if t.Name == "" {
		return fmt.Errorf("template has no name")
	}
	if _, exists := r.byName[t.Name]; exists {
		return fmt.Errorf("template %q already registered", t.Name)
	}
	if t.TargetPath == "" {
		return fmt.Errorf("template %q has no target path", t.Name)
	}

	if _, err := template.New(t.Name).Option("missingkey=error").Parse(t.Body); err != nil {
		return fmt.Errorf("template %q does not parse: %w", t.Name, err)
	}

	declared := make(map[string]bool)
	for _, name := range t.Requires {
		declared[name] = true
	}
	for _, name := range t.OptionalVars {
		declared[name] = true
	}

	used := make(map[string]bool)
	for _, name := range t.Placeholders() {
		used[name] = true
		if !declared[name] {
			return fmt.Errorf("template %q references undeclared variable %q", t.Name, name)
		}
	}
	for _, name := range t.Requires {
		if !used[name] {
			return fmt.Errorf("template %q declares required variable %q but never uses it", t.Name, name)
		}
	}

	r.byName[t.Name] = len(r.templates)
	r.templates = append(r.templates, t)
	return nil
}

// MustRegister registers a template and panics on authoring errors.
// The template set is fixed at startup, so a bad template is a
// programming error, not a runtime condition.
func (r *Registry) MustRegister(t Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Templates returns the registered templates in registration order.
func (r *Registry) Templates() []Template {
	out := make([]Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Lookup returns the template with the given name.
func (r *Registry) Lookup(name string) (Template, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Template{}, false
	}
	return r.templates[idx], true
}

// ProcessString processes a template string with the given parameters.
// Substitution is pure text replacement; a missing parameter is an error.
func ProcessString(text string, params map[string]interface{}) ([]byte, error) {
	tmpl, err := template.New("template").Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("error parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return nil, fmt.Errorf("error executing template: %w", err)
	}

	return buf.Bytes(), nil
}
