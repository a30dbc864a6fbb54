// Package presets exposes the built-in gradient catalog.
package presets

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/prism/internal/config"
	"github.com/alexisbeaulieu97/prism/internal/gradient"
	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Preset is a named, categorized gradient. Gradient is always a private copy
// with freshly generated stop identifiers.
type Preset struct {
	ID       string
	Name     string
	Category string
	Gradient gradient.State
}

type entry struct {
	ID       string          `yaml:"id"`
	Name     string          `yaml:"name"`
	Category string          `yaml:"category"`
	Gradient config.Document `yaml:"gradient"`
}

func (e entry) preset() Preset {
	return Preset{
		ID:       e.ID,
		Name:     e.Name,
		Category: e.Category,
		Gradient: e.Gradient.State(),
	}
}

var (
	catalogOnce sync.Once
	catalog     []entry
)

func entries() []entry {
	catalogOnce.Do(func() {
		parsed, err := parse(catalogYAML)
		if err != nil {
			panic(fmt.Sprintf("presets: embedded catalog is invalid: %v", err))
		}
		catalog = parsed
	})
	return catalog
}

// parse decodes a catalog and checks every entry.
func parse(data []byte) ([]entry, error) {
	var parsed []entry
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(parsed))
	for i, e := range parsed {
		field := fmt.Sprintf("presets[%d]", i)
		if e.ID == "" || e.Name == "" || e.Category == "" {
			return nil, prismerrors.NewValidationError(field, "id, name and category are required", nil)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, prismerrors.NewValidationError(field+".id", fmt.Sprintf("duplicate preset id %q", e.ID), nil)
		}
		seen[e.ID] = struct{}{}

		if err := gradient.Validate(e.Gradient.State()); err != nil {
			return nil, fmt.Errorf("preset %s: %w", e.ID, err)
		}
	}

	return parsed, nil
}

// All returns every preset in catalog order.
func All() []Preset {
	all := entries()
	out := make([]Preset, 0, len(all))
	for _, e := range all {
		out = append(out, e.preset())
	}
	return out
}

// ByCategory returns the presets of one category, matched case-insensitively.
func ByCategory(category string) []Preset {
	var out []Preset
	for _, e := range entries() {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e.preset())
		}
	}
	return out
}

// ByID looks a preset up by its identifier.
func ByID(id string) (Preset, bool) {
	for _, e := range entries() {
		if strings.EqualFold(e.ID, id) {
			return e.preset(), true
		}
	}
	return Preset{}, false
}

// Categories lists category names in the order they first appear.
func Categories() []string {
	var out []string
	for _, e := range entries() {
		if !slices.Contains(out, e.Category) {
			out = append(out, e.Category)
		}
	}
	return out
}

// Apply returns a copy of the preset gradient, with new stop identifiers,
// ready to replace the editor state.
func Apply(p Preset) gradient.State {
	out := p.Gradient.Clone()
	for i := range out.ColorStops {
		out.ColorStops[i].ID = gradient.NewID()
	}
	return out
}
