package reporter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/reporter"
)

type sarifDoc struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []struct {
		Tool struct {
			Driver struct {
				Name           string `json:"name"`
				Version        string `json:"version"`
				InformationURI string `json:"informationUri"`
				Rules          []struct {
					ID            string `json:"id"`
					DefaultConfig struct {
						Level string `json:"level"`
					} `json:"defaultConfiguration"`
				} `json:"rules"`
			} `json:"driver"`
		} `json:"tool"`
		Results []struct {
			RuleID    string `json:"ruleId"`
			RuleIndex int    `json:"ruleIndex"`
			Level     string `json:"level"`
			Message   struct {
				Text string `json:"text"`
			} `json:"message"`
			Locations []struct {
				PhysicalLocation struct {
					ArtifactLocation struct {
						URI string `json:"uri"`
					} `json:"artifactLocation"`
					Region struct {
						StartLine int `json:"startLine"`
					} `json:"region"`
				} `json:"physicalLocation"`
			} `json:"locations"`
			PartialFingerprints map[string]string `json:"partialFingerprints"`
		} `json:"results"`
	} `json:"runs"`
}

func TestSARIFReport(t *testing.T) {
	out, err := (&reporter.SARIFReporter{}).Report(fixtureReport())
	require.NoError(t, err)

	var doc sarifDoc
	require.NoError(t, json.Unmarshal(out, &doc))

	assert.Equal(t, "2.1.0", doc.Version)
	assert.Contains(t, doc.Schema, "sarif-2.1.0")
	require.Len(t, doc.Runs, 1)

	driver := doc.Runs[0].Tool.Driver
	assert.Equal(t, "labkit", driver.Name)
	assert.Equal(t, models.ToolVersion, driver.Version)
	assert.NotEmpty(t, driver.InformationURI)
	require.Len(t, driver.Rules, 7)

	// Two lint problems plus one index finding.
	results := doc.Runs[0].Results
	require.Len(t, results, 3)

	first := results[0]
	assert.Equal(t, "malformed", first.RuleID)
	assert.Equal(t, "error", first.Level)
	assert.Equal(t, driver.Rules[first.RuleIndex].ID, first.RuleID,
		"ruleIndex must point at the matching rule")
	require.Len(t, first.Locations, 1)
	assert.Equal(t, "requirements-dev.txt", first.Locations[0].PhysicalLocation.ArtifactLocation.URI)
	assert.Equal(t, 7, first.Locations[0].PhysicalLocation.Region.StartLine)
	assert.NotEmpty(t, first.PartialFingerprints["primaryLocationLineHash"])

	second := results[1]
	assert.Equal(t, "unpinned", second.RuleID)
	assert.Equal(t, "warning", second.Level)

	third := results[2]
	assert.Equal(t, "outdated", third.RuleID)
	assert.Equal(t, "note", third.Level)
	assert.Equal(t, driver.Rules[third.RuleIndex].ID, "outdated")
	assert.Contains(t, third.Message.Text, "6.2.3")
	assert.Contains(t, third.Message.Text, "8.3.2")
	assert.Equal(t, 11, third.Locations[0].PhysicalLocation.Region.StartLine)
}

func TestSARIFReport_Empty(t *testing.T) {
	out, err := (&reporter.SARIFReporter{}).Report(&models.Report{})
	require.NoError(t, err)

	var doc sarifDoc
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Len(t, doc.Runs, 1)
	assert.Empty(t, doc.Runs[0].Results)
	assert.Len(t, doc.Runs[0].Tool.Driver.Rules, 7, "the rule table is static")
}
