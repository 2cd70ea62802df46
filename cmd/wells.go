package cmd

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	flagPad      bool
	flagPortrait bool
)

var wellsCmd = &cobra.Command{
	Use:   "wells <layout>",
	Short: "Print the well names of a plate as a grid",
	Long: `wells prints the well grid of a plate, one plate row per line. The
layout is either explicit dimensions like 8x12 or the name of a plate
from the built-in formats or a catalog file.

Well names run A1..H12 on a 96-well plate; single-digit columns are
zero-padded with --pad on plates wider than ten columns.

Examples:
  labkit wells 8x12
  labkit wells 96-well --pad
  labkit wells 384-well --portrait
  labkit wells "96-well deep block" --catalog labware.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runWells,
}

func init() {
	rootCmd.AddCommand(wellsCmd)
	wellsCmd.Flags().BoolVar(&flagPad, "pad", false, "Zero-pad single-digit column numbers")
	wellsCmd.Flags().BoolVar(&flagPortrait, "portrait", false, "Rotate the plate a quarter turn")
	wellsCmd.Flags().StringVar(&flagCatalog, "catalog", "", "Labware catalog file (default from config)")
}

func runWells(cmd *cobra.Command, args []string) error {
	def, err := resolveDefinition(args[0])
	if err != nil {
		return err
	}
	if flagPortrait {
		def = def.Portrait()
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 1, ' ', 0)
	for row := 0; row < def.RowCount; row++ {
		cells := make([]string, def.ColumnCount)
		for col := 0; col < def.ColumnCount; col++ {
			name, err := def.WellName(row, col, flagPad)
			if err != nil {
				return err
			}
			cells[col] = name
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()

	_, err = cmd.OutOrStdout().Write(buf.Bytes())
	return err
}
