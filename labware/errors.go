package labware

import (
	"errors"
	"fmt"
)

// Each coordinate operation needs specific measurements; every missing
// one has its own error so callers can tell the user exactly which
// field of the definition to fill in.
var (
	// ErrA1CenterRequired is returned by WellXY when CenterOfA1 is not set.
	ErrA1CenterRequired = errors.New("labware: center of A1 is not set")

	// ErrRowSpacingRequired is returned by WellXY for rows past A when
	// RowSpacing is not set.
	ErrRowSpacingRequired = errors.New("labware: row center-to-center spacing is not set")

	// ErrColumnSpacingRequired is returned by WellXY for columns past 1
	// when ColumnSpacing is not set.
	ErrColumnSpacingRequired = errors.New("labware: column center-to-center spacing is not set")

	// ErrPlateHeightRequired is returned by WellTop when PlateHeight is
	// not set.
	ErrPlateHeightRequired = errors.New("labware: plate height is not set")

	// ErrNoUUID is returned by Validate when the UUID is unset; call
	// EnsureUUID first for new models.
	ErrNoUUID = errors.New("uuid is not set")

	// ErrNoName is returned by Validate for definitions without a name.
	ErrNoName = errors.New("labware: name is not set")

	// ErrNoBarcode is returned by ValidateBarcode when a barcode is
	// required but the labware has none.
	ErrNoBarcode = errors.New("labware: barcode is not set")
)

// PositionError reports a row/column pair that does not exist on a
// definition's well grid.
type PositionError struct {
	Row        int
	Column     int
	Definition *Definition
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("labware: position row %d, column %d does not exist on %dx%d %q",
		e.Row, e.Column, e.Definition.RowCount, e.Definition.ColumnCount, e.Definition.Name)
}
