package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/platewell/labkit/requirements"
)

var flagManifest string

var disableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Comment a pin out of a manifest",
	Long: `disable comments out the enabled pin for a package by prefixing its
line with #. The rest of the line is preserved byte-for-byte, so enable
restores it exactly.`,
	Args: cobra.ExactArgs(1),
	RunE: runDisable,
}

var enableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Re-activate a disabled pin",
	Long: `enable strips the leading # marker from a disabled pin, turning the
commented-out line back into an active requirement.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnable,
}

func init() {
	rootCmd.AddCommand(disableCmd, enableCmd)
	for _, c := range []*cobra.Command{disableCmd, enableCmd} {
		c.Flags().StringVarP(&flagManifest, "file", "f", "requirements.txt", "Manifest to edit")
	}
}

func runDisable(cmd *cobra.Command, args []string) error {
	return editManifest(flagManifest, func(f *requirements.File) error {
		return f.Disable(args[0])
	})
}

func runEnable(cmd *cobra.Command, args []string) error {
	return editManifest(flagManifest, func(f *requirements.File) error {
		return f.Enable(args[0])
	})
}

// editManifest parses the manifest, applies one edit and writes the
// result back. Untouched lines survive byte-for-byte.
func editManifest(path string, edit func(*requirements.File) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	f := requirements.Parse(path, data)
	if err := edit(f); err != nil {
		return err
	}

	if err := os.WriteFile(path, f.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Debug().Str("manifest", path).Msg("manifest updated")
	return nil
}
