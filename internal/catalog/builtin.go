package catalog

import (
	"strings"

	"github.com/platewell/labkit/labware"
)

// builtinEntries are the standard SBS plate formats, available without a
// catalog file. The UUIDs are fixed so a given format keeps the same
// identity everywhere.
var builtinEntries = []Entry{
	{
		Name:          "6-well",
		UUID:          "0a0c8f6c-3d54-4ee1-a3a7-0fb351e44cf7",
		Rows:          2,
		Columns:       3,
		CenterOfA1:    &Point{X: 24.76, Y: 23.16},
		PlateHeight:   labware.Float(20.02),
		RowSpacing:    labware.Float(39.12),
		ColumnSpacing: labware.Float(39.12),
	},
	{
		Name:          "12-well",
		UUID:          "8a35d1be-6a2f-4b99-9a1d-74bb1dc5ebd4",
		Rows:          3,
		Columns:       4,
		CenterOfA1:    &Point{X: 24.94, Y: 16.79},
		PlateHeight:   labware.Float(20.02),
		RowSpacing:    labware.Float(26.01),
		ColumnSpacing: labware.Float(26.01),
	},
	{
		Name:          "24-well",
		UUID:          "c1b5a22f-14c7-4f22-8c5e-9f3b2fd60d12",
		Rows:          4,
		Columns:       6,
		CenterOfA1:    &Point{X: 17.48, Y: 13.84},
		PlateHeight:   labware.Float(20.02),
		RowSpacing:    labware.Float(19.3),
		ColumnSpacing: labware.Float(19.3),
	},
	{
		Name:          "96-well",
		UUID:          "6a4a196f-3a15-417f-9d68-bc95cafc4f1a",
		Rows:          8,
		Columns:       12,
		CenterOfA1:    &Point{X: 14.38, Y: 11.24},
		PlateHeight:   labware.Float(14.35),
		RowSpacing:    labware.Float(9),
		ColumnSpacing: labware.Float(9),
	},
	{
		Name:          "384-well",
		UUID:          "f400e9ab-03ce-4128-9fc6-e26208eb5a30",
		Rows:          16,
		Columns:       24,
		CenterOfA1:    &Point{X: 12.13, Y: 9.05},
		PlateHeight:   labware.Float(14.35),
		RowSpacing:    labware.Float(4.5),
		ColumnSpacing: labware.Float(4.5),
	},
	{
		Name:          "1536-well",
		UUID:          "2e0bba4b-9e4f-4d2a-b5fb-8f52a7a26cd8",
		Rows:          32,
		Columns:       48,
		CenterOfA1:    &Point{X: 11.01, Y: 7.87},
		PlateHeight:   labware.Float(10.4),
		RowSpacing:    labware.Float(2.25),
		ColumnSpacing: labware.Float(2.25),
	},
}

var builtins = mustCatalog(builtinEntries)

// mustCatalog builds a catalog from entries known to be valid.
func mustCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		Source: "builtin",
		defs:   make(map[string]*labware.Definition, len(entries)),
	}
	for _, entry := range entries {
		def, err := entry.Definition()
		if err != nil {
			panic(err)
		}
		c.names = append(c.names, def.Name)
		c.defs[strings.ToLower(def.Name)] = def
	}
	return c
}

// Builtin looks up one of the standard plate formats by name, ignoring
// case.
func Builtin(name string) (*labware.Definition, bool) {
	return builtins.Get(name)
}

// BuiltinNames returns the names of the standard plate formats.
func BuiltinNames() []string {
	return builtins.Names()
}
