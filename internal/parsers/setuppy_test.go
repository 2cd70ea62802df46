package parsers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewell/labkit/internal/parsers"
)

const setupPy = `from setuptools import setup

setup(
    name="labware-domain-models",
    version="0.2.0",
    description="labware data model definitions",
    install_requires=[
        "immutable-data-validation>=0.2",
        "requests[security]>=2.28",
    ],
    tests_require=["pytest>=5.3", "pytest-cov"],
)
`

func TestSetupPyParserCanParse(t *testing.T) {
	p := &parsers.SetupPyParser{}
	assert.True(t, p.CanParse("setup.py"))
	assert.False(t, p.CanParse("setup.cfg"))
	assert.False(t, p.CanParse("conftest.py"))
}

func TestExtractPackageInfo(t *testing.T) {
	name, version := parsers.ExtractPackageInfo([]byte(setupPy))
	assert.Equal(t, "labware-domain-models", name)
	assert.Equal(t, "0.2.0", version)
}

func TestExtractPackageInfo_Missing(t *testing.T) {
	name, version := parsers.ExtractPackageInfo([]byte("from setuptools import setup\nsetup()\n"))
	assert.Empty(t, name)
	assert.Empty(t, version)
}

func TestExtractPackageInfo_ComputedVersion(t *testing.T) {
	content := []byte(`setup(
    name="pkg",
    version=get_version(),
)`)
	name, version := parsers.ExtractPackageInfo(content)
	assert.Equal(t, "pkg", name)
	assert.Empty(t, version, "computed versions are not evaluated")
}

func TestSetupPyParserParse(t *testing.T) {
	p := &parsers.SetupPyParser{}
	deps, problems, err := p.Parse("setup.py", []byte(setupPy))
	require.NoError(t, err)
	assert.Empty(t, problems)
	require.Len(t, deps, 5)

	self := deps[0]
	assert.True(t, self.Self)
	assert.Equal(t, "labware-domain-models", self.Name)
	assert.Equal(t, "0.2.0", self.Version)
	assert.Equal(t, "==", self.Op)
	assert.Equal(t, 4, self.Line)

	assert.Equal(t, "immutable-data-validation", deps[1].Name)
	assert.Equal(t, ">=", deps[1].Op)
	assert.Equal(t, "0.2", deps[1].Version)

	assert.Equal(t, "requests", deps[2].Name)
	assert.Equal(t, []string{"security"}, deps[2].Extras)

	assert.Equal(t, "pytest", deps[3].Name)
	assert.Equal(t, "pytest-cov", deps[4].Name)
	assert.Empty(t, deps[4].Version)
}

func TestSetupPyParserParse_NoSetupCall(t *testing.T) {
	p := &parsers.SetupPyParser{}
	deps, problems, err := p.Parse("setup.py", []byte("print('hello')\n"))
	require.NoError(t, err)
	assert.Empty(t, deps)
	assert.Empty(t, problems)
}
