package reporter

import "github.com/platewell/labkit/internal/models"

// Reporter is the interface for output formatters
type Reporter interface {
	// Report renders the scan report
	Report(report *models.Report) ([]byte, error)
}

// Get returns a reporter for the specified format
func Get(format string) Reporter {
	switch format {
	case "json":
		return &JSONReporter{}
	case "sarif":
		return &SARIFReporter{}
	default:
		return &TerminalReporter{}
	}
}
