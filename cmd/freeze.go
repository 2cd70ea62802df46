package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/requirements"
)

var freezeCmd = &cobra.Command{
	Use:   "freeze <manifest>",
	Short: "Re-render a manifest's enabled pins in canonical form",
	Long: `freeze prints the enabled pins of one requirements manifest sorted by
canonical package name, one name[extras]==version per line. Names and
extras are normalized to their canonical lowercase spelling; comments,
blank lines and disabled pins are dropped.

The manifest itself is not modified. A manifest with format errors does
not freeze; fix it first (see lint).`,
	Args: cobra.ExactArgs(1),
	RunE: runFreeze,
}

func init() {
	rootCmd.AddCommand(freezeCmd)
	freezeCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
}

func runFreeze(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	f := requirements.Parse(path, data)
	var bad []string
	for _, p := range f.Validate() {
		if p.Severity == requirements.SeverityError {
			bad = append(bad, p.String())
		}
	}
	if len(bad) > 0 {
		return fmt.Errorf("%s does not freeze cleanly:\n  %s", path, strings.Join(bad, "\n  "))
	}

	return writeOutput(cmd, flagOutput, f.Freeze())
}
