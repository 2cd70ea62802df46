package requirements_test

import (
	"testing"

	"github.com/platewell/labkit/requirements"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pytest", "pytest"},
		{"PyYAML", "pyyaml"},
		{"zest.releaser", "zest-releaser"},
		{"Zest.Releaser", "zest-releaser"},
		{"misc_test_utils", "misc-test-utils"},
		{"a--b__c..d", "a-b-c-d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, requirements.CanonicalName(tt.in))
		})
	}
}

func TestValidName(t *testing.T) {
	valid := []string{"a", "py", "pytest", "zest.releaser", "misc_test_utils", "pytest-cov", "a2b"}
	for _, name := range valid {
		assert.True(t, requirements.ValidName(name), "expected %q to be valid", name)
	}

	invalid := []string{"", "-pytest", "pytest-", ".pytest", "pytest.", "py test", "py/test", "??"}
	for _, name := range invalid {
		assert.False(t, requirements.ValidName(name), "expected %q to be invalid", name)
	}
}
