package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/reporter"
	"github.com/platewell/labkit/internal/scanner"
)

var (
	flagOutput          string
	flagFormat          string
	flagNoCache         bool
	flagTimeout         int
	flagIndexURL        string
	flagIncludeIndirect bool
	flagDisableRules    []string
)

// addScanFlags registers the flags shared by the manifest scanning
// commands. The flag defaults never override config file values; only
// flags the user actually set do (see scanConfig).
func addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "terminal", "Output format: terminal, json, sarif")
	cmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Disable package index response caching")
	cmd.Flags().IntVar(&flagTimeout, "timeout", 30, "HTTP request timeout in seconds")
	cmd.Flags().StringVar(&flagIndexURL, "index-url", "", "Package index base URL")
	cmd.Flags().BoolVar(&flagIncludeIndirect, "include-indirect", false, "Include indirect go.mod requirements")
	cmd.Flags().StringSliceVar(&flagDisableRules, "disable-rule", nil, "Lint rule to suppress (repeatable)")
}

// scanConfig builds the effective configuration: defaults, then the
// config file, then any flags changed on the command line.
func scanConfig(cmd *cobra.Command, args []string) (*models.Config, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		config.Paths = args
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		config.OutputFile = flagOutput
	}
	if flags.Changed("format") {
		config.OutputFormat = flagFormat
	}
	if flags.Changed("no-cache") {
		config.NoCache = flagNoCache
	}
	if flags.Changed("timeout") {
		config.Timeout = time.Duration(flagTimeout) * time.Second
	}
	if flags.Changed("index-url") {
		config.IndexURL = flagIndexURL
	}
	if flags.Changed("include-indirect") {
		config.IncludeIndirect = flagIncludeIndirect
	}
	if flags.Changed("disable-rule") {
		config.DisabledRules = append(config.DisabledRules, flagDisableRules...)
	}
	return config, nil
}

// scan runs the scanner over the configured paths.
func scan(cmd *cobra.Command, config *models.Config) (*models.Report, error) {
	s, err := scanner.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize scanner: %w", err)
	}
	report, err := s.Scan(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return report, nil
}

// writeReport renders the report in the configured format and writes it
// to the output file or stdout.
func writeReport(cmd *cobra.Command, config *models.Config, report *models.Report) error {
	rep := reporter.Get(config.OutputFormat)
	output, err := rep.Report(report)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return writeOutput(cmd, config.OutputFile, output)
}

// writeOutput sends rendered output to a file when one is named,
// otherwise to the command's stdout.
func writeOutput(cmd *cobra.Command, file string, output []byte) error {
	if file != "" {
		if err := os.WriteFile(file, output, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Report written to %s\n", file)
		return nil
	}
	_, err := cmd.OutOrStdout().Write(output)
	return err
}
