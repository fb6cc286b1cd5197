// Package catalog holds the fixed, ordered list of diagrams deck presents.
//
// The built-in catalog is embedded YAML decoded once at process start. A
// Catalog is immutable after construction: its order defines both the sidebar
// layout and the initial selection.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/deck/internal/validation"
	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

//go:embed catalog.yaml
var builtin []byte

// Diagram is one catalog record. Source is D2 text handed to the engine as is.
type Diagram struct {
	ID     string `yaml:"id" validate:"required,diagram_id"`
	Group  string `yaml:"group" validate:"required"`
	Title  string `yaml:"title" validate:"required,max=120"`
	Source string `yaml:"source" validate:"required"`
}

type document struct {
	Version  string    `yaml:"version" validate:"required,oneof=1"`
	Diagrams []Diagram `yaml:"diagrams" validate:"required,min=1,dive"`
}

// Catalog is an ordered, read-only collection of diagrams.
type Catalog struct {
	diagrams []Diagram
	index    map[string]int
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the embedded catalog. It is decoded on first use only.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Parse("catalog.yaml", builtin)
	})
	return defaultCat, defaultErr
}

// Parse decodes and validates a catalog document.
func Parse(name string, data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, deckerrors.NewYAMLParseError(name, err)
	}

	if err := validation.Struct(doc); err != nil {
		return nil, err
	}

	return New(doc.Diagrams)
}

// New builds a Catalog from records, enforcing unique ids and a non-empty list.
func New(diagrams []Diagram) (*Catalog, error) {
	if len(diagrams) == 0 {
		return nil, deckerrors.NewValidationError("diagrams", "catalog must contain at least one diagram", nil)
	}

	c := &Catalog{
		diagrams: make([]Diagram, len(diagrams)),
		index:    make(map[string]int, len(diagrams)),
	}
	copy(c.diagrams, diagrams)

	for i, d := range c.diagrams {
		if err := validation.Struct(d); err != nil {
			return nil, deckerrors.NewValidationError(fmt.Sprintf("diagrams[%d]", i), err.Error(), err)
		}
		if prev, exists := c.index[d.ID]; exists {
			return nil, deckerrors.NewValidationError(
				fmt.Sprintf("diagrams[%d].id", i),
				fmt.Sprintf("duplicate diagram id %q (first defined at diagrams[%d])", d.ID, prev),
				nil,
			)
		}
		c.index[d.ID] = i
	}

	return c, nil
}

// All returns a copy of the diagrams in catalog order.
func (c *Catalog) All() []Diagram {
	out := make([]Diagram, len(c.diagrams))
	copy(out, c.diagrams)
	return out
}

// Len reports the number of diagrams.
func (c *Catalog) Len() int {
	return len(c.diagrams)
}

// First returns the default selection.
func (c *Catalog) First() Diagram {
	return c.diagrams[0]
}

// Lookup finds a diagram by id.
func (c *Catalog) Lookup(id string) (Diagram, bool) {
	i, ok := c.index[id]
	if !ok {
		return Diagram{}, false
	}
	return c.diagrams[i], true
}
