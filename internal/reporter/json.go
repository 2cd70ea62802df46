package reporter

import (
	"encoding/json"

	"github.com/platewell/labkit/internal/models"
)

// JSONReporter outputs the report in JSON format
type JSONReporter struct{}

// jsonOutput represents the JSON output structure
type jsonOutput struct {
	Summary      jsonSummary      `json:"summary"`
	Problems     []jsonProblem    `json:"problems"`
	Dependencies []jsonDependency `json:"dependencies"`
	Outdated     []jsonOutdated   `json:"outdated,omitempty"`
}

type jsonSummary struct {
	Manifests    int `json:"manifests"`
	Dependencies int `json:"dependencies"`
	Problems     int `json:"problems"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Outdated     int `json:"outdated"`
}

type jsonProblem struct {
	Source   string `json:"source"`
	Line     int    `json:"line,omitempty"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type jsonDependency struct {
	Name      string   `json:"name"`
	Extras    []string `json:"extras,omitempty"`
	Op        string   `json:"op,omitempty"`
	Version   string   `json:"version,omitempty"`
	Ecosystem string   `json:"ecosystem"`
	Source    string   `json:"source"`
	Line      int      `json:"line,omitempty"`
	Disabled  bool     `json:"disabled,omitempty"`
	Self      bool     `json:"self,omitempty"`
}

type jsonOutdated struct {
	Name      string `json:"name"`
	Pinned    string `json:"pinned"`
	Latest    string `json:"latest,omitempty"`
	Published bool   `json:"published"`
	Source    string `json:"source"`
	Line      int    `json:"line,omitempty"`
	Self      bool   `json:"self,omitempty"`
}

// Report generates JSON output for the scan report
func (r *JSONReporter) Report(report *models.Report) ([]byte, error) {
	output := jsonOutput{
		Summary: jsonSummary{
			Manifests:    len(report.Sources()),
			Dependencies: len(report.Dependencies),
			Problems:     len(report.Problems),
			Errors:       report.Errors(),
			Warnings:     report.Warnings(),
			Outdated:     len(report.Outdated),
		},
		Problems:     make([]jsonProblem, 0, len(report.Problems)),
		Dependencies: make([]jsonDependency, 0, len(report.Dependencies)),
	}

	for _, p := range report.Problems {
		output.Problems = append(output.Problems, jsonProblem{
			Source:   p.Source,
			Line:     p.Line,
			Rule:     p.Rule,
			Severity: string(p.Severity),
			Message:  p.Message,
		})
	}

	for _, d := range report.Dependencies {
		output.Dependencies = append(output.Dependencies, jsonDependency{
			Name:      d.Name,
			Extras:    d.Extras,
			Op:        d.Op,
			Version:   d.Version,
			Ecosystem: string(d.Ecosystem),
			Source:    d.SourceFile,
			Line:      d.Line,
			Disabled:  d.Disabled,
			Self:      d.Self,
		})
	}

	for _, o := range report.Outdated {
		output.Outdated = append(output.Outdated, jsonOutdated{
			Name:      o.Dependency.Name,
			Pinned:    o.Dependency.Version,
			Latest:    o.Latest,
			Published: o.Published,
			Source:    o.Dependency.SourceFile,
			Line:      o.Dependency.Line,
			Self:      o.Dependency.Self,
		})
	}

	return json.MarshalIndent(output, "", "  ")
}
