package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/internal/models"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the labkit version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", models.ToolName, models.ToolVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
