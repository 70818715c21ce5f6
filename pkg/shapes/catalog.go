// Package shapes holds the catalog of named parametric surfaces.
package shapes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Faultbox/surfmesh/pkg/surface"
)

// Catalog errors.
var (
	ErrUnknownShape   = errors.New("unknown shape")
	ErrDuplicateShape = errors.New("duplicate shape name")
)

// Shape is a named surface.
type Shape struct {
	Name string
	surface.Func
}

// Catalog is an ordered, immutable set of shapes addressable by name
// or by index.
type Catalog struct {
	shapes []Shape
	byKey  map[string]int
}

// NewCatalog builds a catalog in the given order. Every shape needs a
// unique, non-empty name and a valid resolution.
func NewCatalog(shapes ...Shape) (*Catalog, error) {
	c := &Catalog{
		shapes: make([]Shape, 0, len(shapes)),
		byKey:  make(map[string]int, len(shapes)),
	}

	for _, s := range shapes {
		key := normalize(s.Name)
		if key == "" {
			return nil, fmt.Errorf("shape %d: empty name", len(c.shapes))
		}
		if _, ok := c.byKey[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateShape, s.Name)
		}
		if s.Eval == nil {
			return nil, fmt.Errorf("shape %q: missing evaluator", s.Name)
		}
		if err := s.Res.Validate(); err != nil {
			return nil, fmt.Errorf("shape %q: %w", s.Name, err)
		}

		c.byKey[key] = len(c.shapes)
		c.shapes = append(c.shapes, s)
	}

	return c, nil
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(builtin()...)
	if err != nil {
		panic(fmt.Sprintf("shapes: built-in catalog: %v", err))
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// Len returns the number of shapes.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Names returns the shape names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.shapes))
	for i, s := range c.shapes {
		names[i] = s.Name
	}
	return names
}

// All returns a copy of the shapes in catalog order.
func (c *Catalog) All() []Shape {
	out := make([]Shape, len(c.shapes))
	copy(out, c.shapes)
	return out
}

// ByIndex returns the shape at position i.
func (c *Catalog) ByIndex(i int) (Shape, error) {
	if i < 0 || i >= len(c.shapes) {
		return Shape{}, fmt.Errorf("%w: index %d out of range [0, %d)", ErrUnknownShape, i, len(c.shapes))
	}
	return c.shapes[i], nil
}

// ByName returns the shape with the given name. Matching ignores case,
// spaces, hyphens and underscores.
func (c *Catalog) ByName(name string) (Shape, error) {
	i, ok := c.byKey[normalize(name)]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %q", ErrUnknownShape, name)
	}
	return c.shapes[i], nil
}

// Lookup resolves ref as an index when it parses as an integer and as a
// name otherwise.
func (c *Catalog) Lookup(ref string) (Shape, error) {
	if i, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		return c.ByIndex(i)
	}
	return c.ByName(ref)
}

func normalize(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '\t':
			return -1
		}
		return r
	}, strings.ToLower(name))
}
