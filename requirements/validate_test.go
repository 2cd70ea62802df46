package requirements_test

import (
	"testing"

	"github.com/platewell/labkit/requirements"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Rules(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		rules    []string
	}{
		{
			name:     "clean manifest",
			manifest: "# dev tools\npytest==6.2.3\n#pytest-timeout==1.3.4\n",
			rules:    nil,
		},
		{
			name:     "duplicate name",
			manifest: "pytest==6.2.3\npytest==6.2.4\n",
			rules:    []string{requirements.RuleDuplicate},
		},
		{
			name:     "duplicate under canonicalization",
			manifest: "Zest.Releaser==6.22.1\nzest_releaser==6.22.1\n",
			rules:    []string{requirements.RuleDuplicate},
		},
		{
			name:     "unpinned operator",
			manifest: "pytest>=6.0\n",
			rules:    []string{requirements.RuleUnpinned},
		},
		{
			name:     "compatible release operator",
			manifest: "pytest~=6.2\n",
			rules:    []string{requirements.RuleUnpinned},
		},
		{
			name:     "empty extras",
			manifest: "zest.releaser[]==6.22.1\n",
			rules:    []string{requirements.RuleEmptyExtras},
		},
		{
			name:     "malformed line",
			manifest: "pytest 6.2.3\n",
			rules:    []string{requirements.RuleMalformed},
		},
		{
			name:     "option line",
			manifest: "-r base.txt\npytest==6.2.3\n",
			rules:    []string{requirements.RuleOption},
		},
		{
			name:     "trailing whitespace",
			manifest: "pytest==6.2.3 \n",
			rules:    []string{requirements.RuleWhitespace},
		},
		{
			name:     "leading whitespace",
			manifest: "  pytest==6.2.3\n",
			rules:    []string{requirements.RuleWhitespace},
		},
		{
			name:     "disabled duplicate of enabled pin is allowed",
			manifest: "pytest==6.2.3\n#pytest==6.2.2\n",
			rules:    nil,
		},
		{
			name:     "mixed problems reported in line order",
			manifest: "pytest==6.2.3\nbogus line\npytest==6.2.4\n",
			rules:    []string{requirements.RuleMalformed, requirements.RuleDuplicate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := requirements.Parse("r.txt", []byte(tt.manifest))
			problems := f.Validate()

			var rules []string
			for _, p := range problems {
				rules = append(rules, p.Rule)
			}
			assert.Equal(t, tt.rules, rules)
		})
	}
}

func TestValidate_DuplicateDetails(t *testing.T) {
	f := requirements.Parse("requirements-dev.txt", []byte("pytest==6.2.3\n\npytest==6.2.4\n"))
	problems := f.Validate()

	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, "requirements-dev.txt", p.Source)
	assert.Equal(t, 3, p.Line)
	assert.Equal(t, requirements.SeverityError, p.Severity)
	assert.Contains(t, p.Message, `"pytest" is already pinned on line 1`)
	assert.Equal(t, `requirements-dev.txt:3: "pytest" is already pinned on line 1 [duplicate]`, p.String())
}

func TestValidate_Severities(t *testing.T) {
	f := requirements.Parse("r.txt", []byte("bogus line\npytest>=6.0\n"))
	problems := f.Validate()

	require.Len(t, problems, 2)
	assert.Equal(t, requirements.SeverityError, problems[0].Severity)
	assert.Equal(t, requirements.SeverityWarning, problems[1].Severity)
}

func TestValidate_DoesNotModifyFile(t *testing.T) {
	data := []byte("pytest==6.2.3\npytest==6.2.4 \n")
	f := requirements.Parse("r.txt", data)

	f.Validate()
	assert.Equal(t, data, f.Bytes())
}
