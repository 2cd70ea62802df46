// Package catalog loads named labware definitions from YAML files and
// provides the built-in plate formats every installation knows about.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/platewell/labkit/labware"
)

// Point is the YAML shape of a well center coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Entry is one labware definition as written in a catalog file. The
// measurement fields are optional, matching labware.Definition.
type Entry struct {
	Name             string   `yaml:"name"`
	UUID             string   `yaml:"uuid,omitempty"`
	Rows             int      `yaml:"rows"`
	Columns          int      `yaml:"columns"`
	CenterOfA1       *Point   `yaml:"center-of-a1,omitempty"`
	PlateHeight      *float64 `yaml:"plate-height,omitempty"`
	RowSpacing       *float64 `yaml:"row-spacing,omitempty"`
	ColumnSpacing    *float64 `yaml:"column-spacing,omitempty"`
	DistanceToLiquid *float64 `yaml:"distance-to-liquid,omitempty"`
}

// File is the top-level document of a catalog file.
type File struct {
	Labware []Entry `yaml:"labware"`
}

// Catalog holds the definitions from one catalog file, addressable by
// case-insensitive name in file order.
type Catalog struct {
	Source string

	names []string
	defs  map[string]*labware.Definition
}

// Load reads and parses the catalog file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(path, data)
}

// Parse builds a catalog from YAML data. Every entry must validate as
// labware and names must be unique; entries without a uuid get one
// assigned.
func Parse(source string, data []byte) (*Catalog, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", source, err)
	}

	c := &Catalog{
		Source: source,
		defs:   make(map[string]*labware.Definition, len(file.Labware)),
	}
	for _, entry := range file.Labware {
		def, err := entry.Definition()
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", source, err)
		}
		key := strings.ToLower(def.Name)
		if _, exists := c.defs[key]; exists {
			return nil, fmt.Errorf("catalog %s: duplicate labware %q", source, def.Name)
		}
		c.names = append(c.names, def.Name)
		c.defs[key] = def
	}
	return c, nil
}

// Definition converts the entry into a validated labware definition.
func (e Entry) Definition() (*labware.Definition, error) {
	def := &labware.Definition{
		Name:             e.Name,
		RowCount:         e.Rows,
		ColumnCount:      e.Columns,
		PlateHeight:      e.PlateHeight,
		RowSpacing:       e.RowSpacing,
		ColumnSpacing:    e.ColumnSpacing,
		DistanceToLiquid: e.DistanceToLiquid,
	}
	if e.UUID != "" {
		id, err := uuid.Parse(e.UUID)
		if err != nil {
			return nil, fmt.Errorf("labware %q: invalid uuid %q", e.Name, e.UUID)
		}
		def.UUID = id
	}
	if e.CenterOfA1 != nil {
		def.CenterOfA1 = &labware.WellPoint{X: e.CenterOfA1.X, Y: e.CenterOfA1.Y}
	}
	def.EnsureUUID()
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}

// Get looks up a definition by name, ignoring case.
func (c *Catalog) Get(name string) (*labware.Definition, bool) {
	def, ok := c.defs[strings.ToLower(name)]
	return def, ok
}

// Names returns the labware names in file order.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Resolve finds a definition by name, checking the catalog first when
// one is loaded and falling back to the built-in formats.
func Resolve(c *Catalog, name string) (*labware.Definition, error) {
	if c != nil {
		if def, ok := c.Get(name); ok {
			return def, nil
		}
	}
	if def, ok := Builtin(name); ok {
		return def, nil
	}
	return nil, fmt.Errorf("unknown labware %q", name)
}
