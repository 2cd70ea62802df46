package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/labware"
)

var (
	flagTop     bool
	flagOrigin  string
	flagZDown   bool
	flagXOffset float64
	flagYOffset float64
	flagRight   float64
	flagRear    float64
	flagLid     float64
)

var coordsCmd = &cobra.Command{
	Use:   "coords <layout> <well>",
	Short: "Compute the coordinates of a well",
	Long: `coords prints the x/y center of a well measured from the rear-left
corner of the plate, or with --top the x/y/z of the well top in a
deck coordinate frame. The well is named like B2 or given as a
column-major index (0 is A1, 1 is B1, ...).

The layout needs measurements for this, so explicit dimensions like
8x12 are not enough; use a built-in format or a catalog entry.

Examples:
  labkit coords 96-well B2
  labkit coords 96-well 9
  labkit coords 96-well B2 --top --origin 50,120,40 --lid 7.6
  labkit coords 384-well A1 --x-offset 1.5 --y-offset -0.5`,
	Args: cobra.ExactArgs(2),
	RunE: runCoords,
}

func init() {
	rootCmd.AddCommand(coordsCmd)
	coordsCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Labware catalog file (default from config)")
	coordsCmd.Flags().BoolVar(&flagTop, "top", false, "Report the x/y/z of the well top instead of the x/y center")
	coordsCmd.Flags().StringVar(&flagOrigin, "origin", "0,0,0", "Frame origin as x,y,z in mm")
	coordsCmd.Flags().BoolVar(&flagZDown, "z-down", false, "Frame z axis points down")
	coordsCmd.Flags().Float64Var(&flagXOffset, "x-offset", 0, "Extra x offset in mm")
	coordsCmd.Flags().Float64Var(&flagYOffset, "y-offset", 0, "Extra y offset in mm")
	coordsCmd.Flags().Float64Var(&flagRight, "right", 0, "Offset toward the right edge in mm")
	coordsCmd.Flags().Float64Var(&flagRear, "rear", 0, "Offset toward the rear edge in mm")
	coordsCmd.Flags().Float64Var(&flagLid, "lid", 0, "Lid height in mm")
}

func runCoords(cmd *cobra.Command, args []string) error {
	def, err := resolveDefinition(args[0])
	if err != nil {
		return err
	}
	row, col, err := locateWell(def, args[1])
	if err != nil {
		return err
	}
	name, err := def.WellName(row, col, false)
	if err != nil {
		return err
	}

	if flagTop {
		frame, err := parseFrame(flagOrigin, !flagZDown)
		if err != nil {
			return err
		}
		v, err := def.WellTop(row, col, frame, flagRight, flagRear, flagLid)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: x=%.2f y=%.2f z=%.2f\n", name, v.X, v.Y, v.Z)
		return err
	}

	p, err := def.WellXY(row, col, flagXOffset, flagYOffset)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: x=%.2f y=%.2f\n", name, p.X, p.Y)
	return err
}

// locateWell turns a well argument, a name like B2 or a column-major
// index, into a zero-based row and column on the definition's grid.
func locateWell(def *labware.Definition, well string) (int, int, error) {
	if idx, err := strconv.Atoi(well); err == nil {
		return def.PositionAt(idx)
	}
	row, col, err := labware.ParseWellName(well)
	if err != nil {
		return 0, 0, err
	}
	if err := def.CheckPosition(row, col); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

func parseFrame(origin string, zUp bool) (labware.Frame, error) {
	parts := strings.Split(origin, ",")
	if len(parts) != 3 {
		return labware.Frame{}, fmt.Errorf("origin wants x,y,z, got %q", origin)
	}
	var vals [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return labware.Frame{}, fmt.Errorf("origin wants x,y,z, got %q", origin)
		}
		vals[i] = v
	}
	return labware.Frame{X: vals[0], Y: vals[1], Z: vals[2], ZUp: zUp}, nil
}
