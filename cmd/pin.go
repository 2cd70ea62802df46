package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/requirements"
)

var pinCmd = &cobra.Command{
	Use:   "pin <name==version>",
	Short: "Pin a package to an exact version",
	Long: `pin sets the version of an existing pin, re-activates and updates a
disabled one, or appends a new pin to the end of the manifest. Extras
and inline comments on an existing line are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runPin,
}

func init() {
	rootCmd.AddCommand(pinCmd)
	pinCmd.Flags().StringVarP(&flagManifest, "file", "f", "requirements.txt", "Manifest to edit")
}

func runPin(cmd *cobra.Command, args []string) error {
	req, err := requirements.ParseRequirement(args[0])
	if err != nil {
		return err
	}
	if !req.Pinned() {
		return fmt.Errorf("pin wants name==version, got %q", args[0])
	}

	return editManifest(flagManifest, func(f *requirements.File) error {
		if f.Lookup(req.Name) != nil {
			return f.SetVersion(req.Name, req.Version)
		}
		for _, d := range f.Disabled() {
			if d.CanonicalName() == req.CanonicalName() {
				if err := f.Enable(req.Name); err != nil {
					return err
				}
				return f.SetVersion(req.Name, req.Version)
			}
		}
		return f.Add(req)
	})
}
