package parsers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/internal/parsers"
)

func TestPyProjectParserCanParse(t *testing.T) {
	p := &parsers.PyProjectParser{}
	assert.True(t, p.CanParse("pyproject.toml"))
	assert.False(t, p.CanParse("setup.py"))
	assert.False(t, p.CanParse("Cargo.toml"))
}

func TestPyProjectParserParse_PEP621(t *testing.T) {
	content := []byte(`
[project]
name = "labware-domain-models"
version = "0.2.0"
dependencies = [
    "immutable-data-validation>=0.2",
    "requests[security]>=2.28.0,<3",
    "coverage",
]

[project.optional-dependencies]
dev = ["pytest==6.2.3"]
`)

	p := &parsers.PyProjectParser{}
	deps, problems, err := p.Parse("pyproject.toml", content)
	require.NoError(t, err)
	assert.Empty(t, problems)
	require.Len(t, deps, 5)

	self := deps[0]
	assert.True(t, self.Self)
	assert.Equal(t, "labware-domain-models", self.Name)
	assert.Equal(t, "0.2.0", self.Version)
	assert.Equal(t, "==", self.Op)

	assert.Equal(t, "immutable-data-validation", deps[1].Name)
	assert.Equal(t, ">=", deps[1].Op)
	assert.Equal(t, "0.2", deps[1].Version)

	assert.Equal(t, "requests", deps[2].Name)
	assert.Equal(t, []string{"security"}, deps[2].Extras)
	assert.Equal(t, "2.28.0", deps[2].Version, "only the first clause carries the base version")

	assert.Equal(t, "coverage", deps[3].Name)
	assert.Empty(t, deps[3].Version)

	assert.Equal(t, "pytest", deps[4].Name)
	assert.Equal(t, "6.2.3", deps[4].Version)
}

func TestPyProjectParserParse_Poetry(t *testing.T) {
	content := []byte(`
[tool.poetry]
name = "labkit-fixture"
version = "1.0.0"

[tool.poetry.dependencies]
python = "^3.9"
requests = "^2.28"
toml = "~0.10"
six = "1.16.0"
anything = "*"
structured = { version = ">=1.2,<2", optional = true }

[tool.poetry.dev-dependencies]
pytest = "^6.2"
`)

	p := &parsers.PyProjectParser{}
	deps, problems, err := p.Parse("pyproject.toml", content)
	require.NoError(t, err)
	assert.Empty(t, problems)

	// Self record plus five runtime deps (python excluded) plus one dev dep.
	require.Len(t, deps, 7)
	assert.True(t, deps[0].Self)
	assert.Equal(t, "labkit-fixture", deps[0].Name)

	byName := make(map[string]models.Dependency)
	for _, d := range deps[1:] {
		byName[d.Name] = d
	}
	assert.NotContains(t, byName, "python")

	assert.Equal(t, ">=", byName["requests"].Op)
	assert.Equal(t, "2.28", byName["requests"].Version)

	assert.Equal(t, ">=", byName["toml"].Op)
	assert.Equal(t, "0.10", byName["toml"].Version)

	assert.Equal(t, "==", byName["six"].Op)
	assert.Equal(t, "1.16.0", byName["six"].Version)

	assert.Empty(t, byName["anything"].Op)
	assert.Empty(t, byName["anything"].Version)

	assert.Equal(t, ">=", byName["structured"].Op)
	assert.Equal(t, "1.2", byName["structured"].Version)

	assert.Equal(t, ">=", byName["pytest"].Op)
	assert.Equal(t, "6.2", byName["pytest"].Version)
}

func TestPyProjectParserParse_BadSpec(t *testing.T) {
	content := []byte(`
[project]
name = "fixture"
version = "0.1"
dependencies = ["???broken???"]
`)

	p := &parsers.PyProjectParser{}
	deps, problems, err := p.Parse("pyproject.toml", content)
	require.NoError(t, err)
	require.Len(t, deps, 1, "only the self record survives")
	require.Len(t, problems, 1)
	assert.Equal(t, "malformed", problems[0].Rule)
	assert.Equal(t, models.SeverityWarning, problems[0].Severity)
}

func TestPyProjectParserParse_BadTOML(t *testing.T) {
	p := &parsers.PyProjectParser{}
	_, _, err := p.Parse("pyproject.toml", []byte("[project\nname ="))
	assert.Error(t, err)
}
