package labware

// WellPoint is an x/y position in millimeters relative to the
// rear-left corner of the plate.
type WellPoint struct {
	X float64
	Y float64
}

// Vector is a position in a deck coordinate system, in millimeters
// relative to the frame origin.
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Frame places a plate inside a right-handed deck coordinate system:
// where the plate origin sits relative to the frame origin, and which
// way the frame's z axis points. The plate's own system always has z
// pointing down toward the deck.
type Frame struct {
	X   float64
	Y   float64
	Z   float64
	ZUp bool
}

// WellXY returns the center of the well at the zero-based row and
// column, relative to the rear-left corner of the plate. The offsets
// are added to the result as-is.
//
// CenterOfA1 must be set; rows past A additionally need RowSpacing and
// columns past 1 need ColumnSpacing.
func (d *Definition) WellXY(row, column int, xOffset, yOffset float64) (WellPoint, error) {
	if d.CenterOfA1 == nil {
		return WellPoint{}, ErrA1CenterRequired
	}
	p := *d.CenterOfA1
	if row > 0 {
		if d.RowSpacing == nil {
			return WellPoint{}, ErrRowSpacingRequired
		}
		p.Y += *d.RowSpacing * float64(row)
	}
	if column > 0 {
		if d.ColumnSpacing == nil {
			return WellPoint{}, ErrColumnSpacingRequired
		}
		p.X += *d.ColumnSpacing * float64(column)
	}
	p.X += xOffset
	p.Y += yOffset
	return p, nil
}

// WellTop returns the position of the top of the well inside frame.
// The offsets are expressed as if z pointed up regardless of the
// frame: toward the right plate edge, toward the rear of the plate,
// and up toward the lid.
//
// PlateHeight must be set in addition to what WellXY requires.
func (d *Definition) WellTop(row, column int, frame Frame, rightOffset, rearOffset, lidOffset float64) (Vector, error) {
	if d.PlateHeight == nil {
		return Vector{}, ErrPlateHeightRequired
	}

	// In the plate's own system y grows toward the front rows, so an
	// offset toward the rear is negative y.
	p, err := d.WellXY(row, column, rightOffset, -rearOffset)
	if err != nil {
		return Vector{}, err
	}

	v := Vector{X: p.X, Y: p.Y, Z: *d.PlateHeight + lidOffset}
	if frame.ZUp {
		v.Y = -v.Y
	} else {
		v.Z = -v.Z
	}

	v.X += frame.X
	v.Y += frame.Y
	v.Z += frame.Z
	return v, nil
}
