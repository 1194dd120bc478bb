package segments

import (
	"fmt"
	"io/fs"
	"math/rand"
	"sort"
)

// Library holds the set of templates the recycler draws from.
type Library struct {
	templates []*Template
}

// NewLibrary builds a library from in-memory templates. Used by tests and
// anywhere the embedded authoring data isn't wanted.
func NewLibrary(templates ...*Template) *Library {
	return &Library{templates: templates}
}

// LoadLibrary parses every embedded template file. A template that fails to
// parse fails the whole load; authoring data is trusted once parsed.
func LoadLibrary() (*Library, error) {
	l := &Library{}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// Reload re-parses all template files in place, preferring on-disk copies.
// Live segment instances keep their old template until they recycle.
func (l *Library) Reload() error {
	names, err := fs.Glob(templatesFS, "*.yaml")
	if err != nil {
		return fmt.Errorf("segments: glob templates: %w", err)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("segments: no template files embedded")
	}

	templates := make([]*Template, 0, len(names))
	for _, name := range names {
		data, err := Load(name)
		if err != nil {
			return fmt.Errorf("segments: load %s: %w", name, err)
		}
		t, err := parseTemplate(name, data)
		if err != nil {
			return err
		}
		templates = append(templates, t)
	}
	l.templates = templates
	return nil
}

// Pick returns a uniformly random template.
func (l *Library) Pick(rng *rand.Rand) *Template {
	return l.templates[rng.Intn(len(l.templates))]
}

func (l *Library) Len() int {
	return len(l.templates)
}

// Templates returns the current template set in file order.
func (l *Library) Templates() []*Template {
	return l.templates
}
