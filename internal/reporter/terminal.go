package reporter

import (
	"fmt"
	"strings"

	"github.com/platewell/labkit/internal/models"
)

// TerminalReporter renders the report in a human-readable format
type TerminalReporter struct{}

// Report renders the scan report for terminal output
func (r *TerminalReporter) Report(report *models.Report) ([]byte, error) {
	var sb strings.Builder

	deps := countNoun(len(report.Dependencies), "dependency", "dependencies")
	manifests := countNoun(len(report.Sources()), "manifest", "manifests")

	if !report.HasProblems() {
		sb.WriteString(fmt.Sprintf("✓ no problems in %s, %s\n", deps, manifests))
	} else {
		sb.WriteString(fmt.Sprintf("✗ %s (%s, %s) in %s, %s\n",
			countNoun(len(report.Problems), "problem", "problems"),
			countNoun(report.Errors(), "error", "errors"),
			countNoun(report.Warnings(), "warning", "warnings"),
			deps, manifests))
		sb.WriteString("\n")

		for _, p := range report.Problems {
			sb.WriteString(fmt.Sprintf("%s:%d: %s: %s [%s]\n",
				p.Source, p.Line, p.Severity, p.Message, p.Rule))
		}
	}

	if len(report.Outdated) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s behind the index:\n",
			countNoun(len(report.Outdated), "pin", "pins")))
		for _, o := range report.Outdated {
			sb.WriteString("  " + outdatedLine(o) + "\n")
		}
	}

	return []byte(sb.String()), nil
}

// outdatedLine renders one index finding, located like a compiler
// diagnostic when a line number is known
func outdatedLine(o models.Outdated) string {
	d := o.Dependency
	loc := d.SourceFile
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.SourceFile, d.Line)
	}

	switch {
	case d.Self:
		return fmt.Sprintf("%s: %s already on the index, bump before release (%s)", d.Name, d.Version, loc)
	case o.Latest == "":
		return fmt.Sprintf("%s: not on the index (%s)", d.Name, loc)
	case !o.Published:
		return fmt.Sprintf("%s: %s never published, latest is %s (%s)", d.Name, d.Version, o.Latest, loc)
	default:
		return fmt.Sprintf("%s: %s → %s (%s)", d.Name, d.Version, o.Latest, loc)
	}
}

// countNoun formats a count with the right plural form
func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
