package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/platewell/labkit/internal/models"
)

var (
	flagConfig  string
	flagVerbose bool
)

// errFindings is returned by commands whose scan succeeded but turned
// up findings. Execute maps it to exit code 1, keeping 2 for
// operational failures.
var errFindings = errors.New("findings reported")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "labkit",
	Short: "Lint pinned Python requirements and model labware plates",
	Long: `labkit keeps pinned dependency manifests honest and answers questions
about labware plate layouts.

The lint, list, outdated and freeze commands work on dependency
manifests:
  - Python: requirements*.txt, pyproject.toml, setup.py
  - Go: go.mod

Pins are checked for format problems (unpinned constraints, duplicates,
malformed lines) and optionally compared against the package index.
Disabled pins, lines commented out with a leading #, are tracked but
never counted against the manifest.

The wells, coords and catalog commands answer plate layout questions
from built-in SBS formats or a YAML labware catalog.

Examples:
  # Lint every manifest under the current directory
  labkit lint

  # Machine-readable results for code scanning
  labkit lint --format sarif --output results.sarif

  # Compare pins against PyPI
  labkit outdated requirements-dev.txt

  # Comment a pin out, and back in
  labkit disable pytest-timeout -f requirements-dev.txt
  labkit enable pytest-timeout -f requirements-dev.txt

  # Well names of a 96-well plate, zero-padded
  labkit wells 96-well --pad

  # Center of well B2 on a plate from a catalog file
  labkit coords "96-well deep block" B2 --catalog labware.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRun:  setupLogging,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFindings) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: "+models.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(cmd *cobra.Command, args []string) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	level := zerolog.WarnLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger().Level(level)
}

// loadConfig reads the file named by --config, falling back to
// .labkit.toml in the working directory and then to plain defaults.
func loadConfig() (*models.Config, error) {
	if flagConfig != "" {
		return models.LoadConfig(flagConfig)
	}
	if _, err := os.Stat(models.DefaultConfigFile); err == nil {
		return models.LoadConfig(models.DefaultConfigFile)
	}
	return models.DefaultConfig(), nil
}
