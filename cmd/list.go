package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List the dependencies declared in discovered manifests",
	Long: `list prints every dependency record parsed from the discovered
manifests as a table. Disabled pins and the package a manifest itself
defines are included and marked in the STATUS column.

With --format json or sarif the full report is emitted instead of the
table.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	addScanFlags(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	config, err := scanConfig(cmd, args)
	if err != nil {
		return err
	}
	report, err := scan(cmd, config)
	if err != nil {
		return err
	}

	if config.OutputFormat != "" && config.OutputFormat != "terminal" {
		return writeReport(cmd, config, report)
	}

	if len(report.Dependencies) == 0 {
		return writeOutput(cmd, config.OutputFile, []byte("no dependencies found\n"))
	}

	deps := make([]models.Dependency, len(report.Dependencies))
	copy(deps, report.Dependencies)
	sort.SliceStable(deps, func(i, j int) bool {
		if deps[i].Name != deps[j].Name {
			return deps[i].Name < deps[j].Name
		}
		return deps[i].SourceFile < deps[j].SourceFile
	})

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tECOSYSTEM\tSTATUS\tSOURCE")
	for _, d := range deps {
		version := d.Version
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", d.Name, version, d.Ecosystem, depStatus(d), d.SourceFile)
	}
	w.Flush()

	return writeOutput(cmd, config.OutputFile, buf.Bytes())
}

func depStatus(d models.Dependency) string {
	switch {
	case d.Disabled:
		return "disabled"
	case d.Self:
		return "self"
	case d.Pinned():
		return "pinned"
	default:
		return "unpinned"
	}
}
