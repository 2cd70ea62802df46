package reporter

import (
	"encoding/json"
	"fmt"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/requirements"
)

// ruleOutdated identifies index staleness findings; the lint rules
// carry their requirements package identifiers.
const ruleOutdated = "outdated"

// SARIFReporter outputs the report in SARIF format for GitHub Code Scanning
type SARIFReporter struct{}

// SARIF structures
type sarifReport struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	HelpURI          string          `json:"helpUri"`
	DefaultConfig    sarifRuleConfig `json:"defaultConfiguration"`
	Properties       sarifProperties `json:"properties"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifRuleConfig struct {
	Level string `json:"level"`
}

type sarifProperties struct {
	Tags []string `json:"tags"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	RuleIndex           int               `json:"ruleIndex"`
	Level               string            `json:"level"`
	Message             sarifText         `json:"message"`
	Locations           []sarifLocation   `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifact `json:"artifactLocation"`
	Region           sarifRegion   `json:"region,omitempty"`
}

type sarifArtifact struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine int `json:"startLine,omitempty"`
}

const pipFormatDoc = "https://pip.pypa.io/en/stable/reference/requirements-file-format/"

// sarifRules is the static rule table. Indices are stable so results
// can reference rules by position.
var sarifRules = []sarifRule{
	{
		ID:               requirements.RuleMalformed,
		Name:             "MalformedLine",
		ShortDescription: sarifText{Text: "Line does not parse as a pinned requirement"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "error"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               requirements.RuleDuplicate,
		Name:             "DuplicatePin",
		ShortDescription: sarifText{Text: "Package is pinned more than once"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "error"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               requirements.RuleUnpinned,
		Name:             "UnpinnedRequirement",
		ShortDescription: sarifText{Text: "Requirement is not pinned to an exact version"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "warning"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               requirements.RuleEmptyExtras,
		Name:             "EmptyExtras",
		ShortDescription: sarifText{Text: "Extras selector is empty"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "warning"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               requirements.RuleWhitespace,
		Name:             "StrayWhitespace",
		ShortDescription: sarifText{Text: "Requirement line carries stray whitespace"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "note"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               requirements.RuleOption,
		Name:             "OptionLine",
		ShortDescription: sarifText{Text: "Pip option line is not checked against the pin rules"},
		HelpURI:          pipFormatDoc,
		DefaultConfig:    sarifRuleConfig{Level: "note"},
		Properties:       sarifProperties{Tags: []string{"lint", "requirements"}},
	},
	{
		ID:               ruleOutdated,
		Name:             "OutdatedPin",
		ShortDescription: sarifText{Text: "Pinned version is behind the package index"},
		HelpURI:          "https://pypi.org",
		DefaultConfig:    sarifRuleConfig{Level: "note"},
		Properties:       sarifProperties{Tags: []string{"index", "requirements"}},
	},
}

// Report generates SARIF output for the scan report
func (r *SARIFReporter) Report(report *models.Report) ([]byte, error) {
	ruleIndex := make(map[string]int, len(sarifRules))
	for i, rule := range sarifRules {
		ruleIndex[rule.ID] = i
	}

	out := sarifReport{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{{
			Tool: sarifTool{
				Driver: sarifDriver{
					Name:           models.ToolName,
					Version:        models.ToolVersion,
					InformationURI: models.ToolURL,
					Rules:          sarifRules,
				},
			},
			Results: r.buildResults(report, ruleIndex),
		}},
	}

	return json.MarshalIndent(out, "", "  ")
}

func (r *SARIFReporter) buildResults(report *models.Report, ruleIndex map[string]int) []sarifResult {
	results := make([]sarifResult, 0, len(report.Problems)+len(report.Outdated))

	for _, p := range report.Problems {
		idx, known := ruleIndex[p.Rule]
		if !known {
			continue
		}

		results = append(results, sarifResult{
			RuleID:    p.Rule,
			RuleIndex: idx,
			Level:     sarifLevel(p.Severity),
			Message:   sarifText{Text: p.Message},
			Locations: []sarifLocation{locationFor(p.Source, p.Line)},
			PartialFingerprints: map[string]string{
				"primaryLocationLineHash": fmt.Sprintf("%s:%d:%s", p.Source, p.Line, p.Rule),
			},
		})
	}

	for _, o := range report.Outdated {
		d := o.Dependency
		results = append(results, sarifResult{
			RuleID:    ruleOutdated,
			RuleIndex: ruleIndex[ruleOutdated],
			Level:     "note",
			Message:   sarifText{Text: outdatedLine(o)},
			Locations: []sarifLocation{locationFor(d.SourceFile, d.Line)},
			PartialFingerprints: map[string]string{
				"primaryLocationLineHash": fmt.Sprintf("%s:%d:%s", d.SourceFile, d.Line, ruleOutdated),
			},
		})
	}

	return results
}

// sarifLevel maps a problem severity onto the SARIF level scale
func sarifLevel(s models.Severity) string {
	switch s {
	case models.SeverityError:
		return "error"
	case models.SeverityWarning:
		return "warning"
	default:
		return "note"
	}
}

func locationFor(uri string, line int) sarifLocation {
	loc := sarifLocation{
		PhysicalLocation: sarifPhysicalLocation{
			ArtifactLocation: sarifArtifact{URI: uri},
		},
	}
	if line > 0 {
		loc.PhysicalLocation.Region = sarifRegion{StartLine: line}
	}
	return loc
}
