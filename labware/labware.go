// Package labware models SBS-footprint labware: plate definitions with
// row/column grids, well naming, and the coordinate math for locating
// wells on a deck.
//
// All measurements are in millimeters. A plate's own coordinate system
// has its origin at the rear-left corner of the plate at the bottom
// surface, near well A1; y increases moving down the rows and z points
// down toward the deck.
package labware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// A 1536-well plate is 32x48; no SBS plate is denser than that.
const (
	MaxRows    = 32
	MaxColumns = 48
)

// MaxNameLength bounds the descriptive name of a definition.
const MaxNameLength = 255

// Definition describes a model of labware: its grid of wells and the
// measurements needed to locate them. The measurement fields are nil
// until known; each operation demands only the subset it needs.
type Definition struct {
	UUID uuid.UUID

	// Name is a descriptive written name such as "96-well".
	Name string

	RowCount    int
	ColumnCount int

	// CenterOfA1 is the x/y position of the center of well A1 relative
	// to the rear-left corner of the plate.
	CenterOfA1 *WellPoint

	// PlateHeight is the height of the plate without its lid.
	PlateHeight *float64

	// RowSpacing is the center-to-center distance between adjacent
	// rows, e.g. 9 for a 96-well plate.
	RowSpacing *float64

	// ColumnSpacing is the center-to-center distance between adjacent
	// columns.
	ColumnSpacing *float64

	// DistanceToLiquid is measured up from the deck (z=0), including
	// the thickness of the plate bottom and any gap beneath it.
	DistanceToLiquid *float64
}

// EnsureUUID assigns a fresh random UUID when none is set.
func (d *Definition) EnsureUUID() {
	if d.UUID == uuid.Nil {
		d.UUID = uuid.New()
	}
}

// Validate checks that the definition is complete enough to describe
// real labware: a UUID, a bounded name, and row and column counts in
// range. The optional measurements are not required.
func (d *Definition) Validate() error {
	if d.UUID == uuid.Nil {
		return fmt.Errorf("labware %q: %w", d.Name, ErrNoUUID)
	}
	if d.Name == "" {
		return ErrNoName
	}
	if len(d.Name) > MaxNameLength {
		return fmt.Errorf("labware: name longer than %d characters", MaxNameLength)
	}
	return d.ValidateCounts()
}

// ValidateCounts checks that the row and column counts fall within the
// SBS grid bounds.
func (d *Definition) ValidateCounts() error {
	if d.RowCount < 1 || d.RowCount > MaxRows {
		return fmt.Errorf("labware %q: row count %d outside [1, %d]", d.Name, d.RowCount, MaxRows)
	}
	if d.ColumnCount < 1 || d.ColumnCount > MaxColumns {
		return fmt.Errorf("labware %q: column count %d outside [1, %d]", d.Name, d.ColumnCount, MaxColumns)
	}
	return nil
}

// CheckPosition reports whether the zero-based row and column exist on
// this definition's grid. The definition itself must have valid counts.
func (d *Definition) CheckPosition(row, column int) error {
	if err := d.ValidateCounts(); err != nil {
		return err
	}
	if row < 0 || row >= d.RowCount || column < 0 || column >= d.ColumnCount {
		return &PositionError{Row: row, Column: column, Definition: d}
	}
	return nil
}

// WellCount returns the number of wells on the plate.
func (d *Definition) WellCount() int {
	return d.RowCount * d.ColumnCount
}

// WellName formats the name of the well at the zero-based row and
// column: row 0, column 0 is "A1". Rows past Z continue with double
// letters (AA, AB, ...) as on 1536-well plates. With padZeros,
// single-digit column numbers gain a leading zero on plates denser
// than 10 columns, so A1 renders as "A01" on a 96-well plate but stays
// "A1" on a 12-well one.
func (d *Definition) WellName(row, column int, padZeros bool) (string, error) {
	if row < 0 || column < 0 {
		return "", fmt.Errorf("labware: negative well position (%d, %d)", row, column)
	}
	if padZeros {
		if err := d.ValidateCounts(); err != nil {
			return "", err
		}
	}

	col := strconv.Itoa(column + 1)
	if padZeros && d.ColumnCount > 10 && len(col) == 1 {
		col = "0" + col
	}
	return rowLabel(row) + col, nil
}

// PositionAt converts a zero-based well index to its row and column.
// Wells are numbered column-major: index 1 on a 96-well plate is B1,
// not A2.
func (d *Definition) PositionAt(index int) (row, column int, err error) {
	if err := d.ValidateCounts(); err != nil {
		return 0, 0, err
	}
	if index < 0 {
		return 0, 0, fmt.Errorf("labware: negative well index %d", index)
	}
	return index % d.RowCount, index / d.RowCount, nil
}

// WellNameAt formats the name of the well at the zero-based,
// column-major index.
func (d *Definition) WellNameAt(index int, padZeros bool) (string, error) {
	row, column, err := d.PositionAt(index)
	if err != nil {
		return "", err
	}
	return d.WellName(row, column, padZeros)
}

// Equal reports whether two definitions describe the same labware,
// comparing every field including unset measurements.
func (d *Definition) Equal(other *Definition) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.UUID == other.UUID &&
		d.Name == other.Name &&
		d.RowCount == other.RowCount &&
		d.ColumnCount == other.ColumnCount &&
		pointsEqual(d.CenterOfA1, other.CenterOfA1) &&
		floatsEqual(d.PlateHeight, other.PlateHeight) &&
		floatsEqual(d.RowSpacing, other.RowSpacing) &&
		floatsEqual(d.ColumnSpacing, other.ColumnSpacing) &&
		floatsEqual(d.DistanceToLiquid, other.DistanceToLiquid)
}

// Portrait returns a definition for the plate rotated 90 degrees
// clockwise: row and column counts swap, as do the spacings and the
// coordinates of the A1 center. Well A1 of the portrait definition
// sits where the last row's first well sat in landscape. The portrait
// definition carries no UUID or name of its own.
func (d *Definition) Portrait() *Definition {
	p := &Definition{
		RowCount:         d.ColumnCount,
		ColumnCount:      d.RowCount,
		PlateHeight:      cloneFloat(d.PlateHeight),
		RowSpacing:       cloneFloat(d.ColumnSpacing),
		ColumnSpacing:    cloneFloat(d.RowSpacing),
		DistanceToLiquid: cloneFloat(d.DistanceToLiquid),
	}
	if d.CenterOfA1 != nil {
		p.CenterOfA1 = &WellPoint{X: d.CenterOfA1.Y, Y: d.CenterOfA1.X}
	}
	return p
}

// ParseWellName converts a well name such as "A1", "A02" or "AA12"
// back to its zero-based row and column. Lowercase row letters are
// accepted.
func ParseWellName(name string) (row, column int, err error) {
	name = strings.ToUpper(strings.TrimSpace(name))

	i := 0
	for i < len(name) && name[i] >= 'A' && name[i] <= 'Z' {
		i++
	}
	if i == 0 || i > 2 {
		return 0, 0, fmt.Errorf("labware: well name %q must start with one or two row letters", name)
	}

	n, convErr := strconv.Atoi(name[i:])
	if convErr != nil || n < 1 {
		return 0, 0, fmt.Errorf("labware: well name %q needs a column number starting at 1", name)
	}

	row = int(name[0] - 'A')
	if i == 2 {
		row = (row+1)*26 + int(name[1]-'A')
	}
	return row, n - 1, nil
}

// rowLabel letters a zero-based row: A..Z, then AA..AF for the bottom
// rows of a 1536-well plate.
func rowLabel(row int) string {
	if row < 26 {
		return string(rune('A' + row))
	}
	return string(rune('A'+row/26-1)) + string(rune('A'+row%26))
}

// Float returns a pointer to v, for filling the optional measurement
// fields of a definition.
func Float(v float64) *float64 {
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func floatsEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func pointsEqual(a, b *WellPoint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
