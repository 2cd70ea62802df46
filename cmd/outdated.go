package cmd

import (
	"github.com/spf13/cobra"
)

var flagFailBehind bool

var outdatedCmd = &cobra.Command{
	Use:   "outdated [paths...]",
	Short: "Compare pinned versions against the package index",
	Long: `outdated looks up every pinned package on the package index and reports
pins that fall behind the latest installable release, packages the index
does not know, and releases where every file was yanked.

For the package a manifest itself defines (setup.py or pyproject) the
check inverts: its pinned version being on the index already means the
version must be bumped before the next release.

Index responses are cached on disk; use --no-cache to always ask the
index.`,
	RunE: runOutdated,
}

func init() {
	rootCmd.AddCommand(outdatedCmd)
	addScanFlags(outdatedCmd)
	outdatedCmd.Flags().BoolVar(&flagFailBehind, "fail", false, "Exit 1 when pins are behind the index")
}

func runOutdated(cmd *cobra.Command, args []string) error {
	config, err := scanConfig(cmd, args)
	if err != nil {
		return err
	}
	config.IncludeOutdated = true

	report, err := scan(cmd, config)
	if err != nil {
		return err
	}
	if err := writeReport(cmd, config, report); err != nil {
		return err
	}

	if flagFailBehind && len(report.Outdated) > 0 {
		return errFindings
	}
	return nil
}
