package parsers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/parsers"
)

func TestRequirementsParserCanParse(t *testing.T) {
	p := &parsers.RequirementsParser{}

	accepted := []string{
		"requirements.txt",
		"requirements-dev.txt",
		"requirements-test.txt",
		"requirements_prod.txt",
		"dev-requirements.txt",
		"test_requirements.txt",
	}
	for _, name := range accepted {
		assert.True(t, p.CanParse(name), name)
	}

	rejected := []string{
		"requirements.in",
		"requirements",
		"setup.py",
		"pyproject.toml",
		"notes.txt",
		"requirementsfoo.txt",
	}
	for _, name := range rejected {
		assert.False(t, p.CanParse(name), name)
	}
}

func TestRequirementsParserParse(t *testing.T) {
	content := []byte(`# dev tooling
pytest==6.2.3
zest.releaser[recommended]==6.22.1
#pytest-timeout==1.3.4
requests>=2.0
not a requirement line
`)

	p := &parsers.RequirementsParser{}
	deps, problems, err := p.Parse("requirements-dev.txt", content)
	require.NoError(t, err)

	require.Len(t, deps, 4)

	assert.Equal(t, models.Dependency{
		Name:       "pytest",
		Op:         "==",
		Version:    "6.2.3",
		Ecosystem:  models.EcosystemPyPI,
		SourceFile: "requirements-dev.txt",
		Line:       2,
	}, deps[0])

	assert.Equal(t, "zest.releaser", deps[1].Name)
	assert.Equal(t, []string{"recommended"}, deps[1].Extras)
	assert.Equal(t, "6.22.1", deps[1].Version)

	assert.Equal(t, "pytest-timeout", deps[2].Name)
	assert.True(t, deps[2].Disabled, "commented-out pin must surface as disabled")
	assert.Equal(t, 4, deps[2].Line)

	assert.Equal(t, "requests", deps[3].Name)
	assert.Equal(t, ">=", deps[3].Op)
	assert.False(t, deps[3].Pinned())

	require.Len(t, problems, 2)
	assert.Equal(t, "unpinned", problems[0].Rule)
	assert.Equal(t, models.SeverityWarning, problems[0].Severity)
	assert.Equal(t, 5, problems[0].Line)
	assert.Equal(t, "malformed", problems[1].Rule)
	assert.Equal(t, models.SeverityError, problems[1].Severity)
	assert.Equal(t, 6, problems[1].Line)
}

func TestRequirementsParserParse_Empty(t *testing.T) {
	p := &parsers.RequirementsParser{}
	deps, problems, err := p.Parse("requirements.txt", nil)
	require.NoError(t, err)
	assert.Empty(t, deps)
	assert.Empty(t, problems)
}
