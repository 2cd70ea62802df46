package reporter_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/reporter"
)

func TestJSONReport(t *testing.T) {
	out, err := (&reporter.JSONReporter{}).Report(fixtureReport())
	require.NoError(t, err)

	var decoded struct {
		Summary struct {
			Manifests    int `json:"manifests"`
			Dependencies int `json:"dependencies"`
			Problems     int `json:"problems"`
			Errors       int `json:"errors"`
			Warnings     int `json:"warnings"`
			Outdated     int `json:"outdated"`
		} `json:"summary"`
		Problems []struct {
			Source   string `json:"source"`
			Line     int    `json:"line"`
			Rule     string `json:"rule"`
			Severity string `json:"severity"`
			Message  string `json:"message"`
		} `json:"problems"`
		Dependencies []struct {
			Name      string   `json:"name"`
			Extras    []string `json:"extras"`
			Version   string   `json:"version"`
			Ecosystem string   `json:"ecosystem"`
		} `json:"dependencies"`
		Outdated []struct {
			Name      string `json:"name"`
			Pinned    string `json:"pinned"`
			Latest    string `json:"latest"`
			Published bool   `json:"published"`
		} `json:"outdated"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))

	assert.Equal(t, 1, decoded.Summary.Manifests)
	assert.Equal(t, 3, decoded.Summary.Dependencies)
	assert.Equal(t, 2, decoded.Summary.Problems)
	assert.Equal(t, 1, decoded.Summary.Errors)
	assert.Equal(t, 1, decoded.Summary.Warnings)
	assert.Equal(t, 1, decoded.Summary.Outdated)

	require.Len(t, decoded.Problems, 2)
	assert.Equal(t, "malformed", decoded.Problems[0].Rule)
	assert.Equal(t, "error", decoded.Problems[0].Severity)
	assert.Equal(t, 7, decoded.Problems[0].Line)

	require.Len(t, decoded.Dependencies, 3)
	assert.Equal(t, "zest.releaser", decoded.Dependencies[1].Name)
	assert.Equal(t, []string{"recommended"}, decoded.Dependencies[1].Extras)

	require.Len(t, decoded.Outdated, 1)
	assert.Equal(t, "pytest", decoded.Outdated[0].Name)
	assert.Equal(t, "6.2.3", decoded.Outdated[0].Pinned)
	assert.Equal(t, "8.3.2", decoded.Outdated[0].Latest)
	assert.True(t, decoded.Outdated[0].Published)
}

func TestJSONReport_EmptyArraysNotNull(t *testing.T) {
	out, err := (&reporter.JSONReporter{}).Report(&models.Report{})
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"problems": []`)
	assert.Contains(t, s, `"dependencies": []`)
	assert.NotContains(t, s, "null")
}
