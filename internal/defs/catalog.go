// internal/defs/catalog.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed styles.json
var defaultStyles []byte

// Catalog is a read-only registry of styles, keyed by name, in definition order.
type Catalog struct {
	order  []string
	styles map[string]Style
}

// NewCatalog builds a catalog, rejecting invalid or duplicate definitions.
func NewCatalog(styles []Style) (*Catalog, error) {
	c := &Catalog{styles: make(map[string]Style, len(styles))}
	for _, s := range styles {
		if err := validate(s); err != nil {
			return nil, err
		}
		if _, dup := c.styles[s.Name]; dup {
			return nil, fmt.Errorf("duplicate style %q", s.Name)
		}
		c.styles[s.Name] = s
		c.order = append(c.order, s.Name)
	}
	if len(c.order) == 0 {
		return nil, fmt.Errorf("style catalog is empty")
	}
	return c, nil
}

func validate(s Style) error {
	switch {
	case s.Name == "":
		return fmt.Errorf("style without a name")
	case s.PointCount < 0:
		return fmt.Errorf("style %q: negative point count %d", s.Name, s.PointCount)
	case s.PointSize <= 0:
		return fmt.Errorf("style %q: point size must be positive", s.Name)
	case s.Spread < 0:
		return fmt.Errorf("style %q: negative spread", s.Name)
	}
	return nil
}

// Get returns the style registered under name.
func (c *Catalog) Get(name string) (Style, error) {
	s, ok := c.styles[name]
	if !ok {
		return Style{}, &UnknownStyleError{Name: name}
	}
	return s, nil
}

// Names returns style names in definition order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// ParseStyles decodes a JSON array of style definitions.
func ParseStyles(data []byte) (*Catalog, error) {
	var styles []Style
	if err := json.Unmarshal(data, &styles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal style definitions: %w", err)
	}
	return NewCatalog(styles)
}

// LoadStyles reads the style definitions file.
func LoadStyles(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style definitions file: %w", err)
	}
	return ParseStyles(data)
}

// DefaultCatalog returns the built-in styles.
func DefaultCatalog() *Catalog {
	c, err := ParseStyles(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("embedded styles: %v", err))
	}
	return c
}
