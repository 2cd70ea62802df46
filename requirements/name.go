package requirements

import (
	"regexp"
	"strings"
)

// namePattern is the PEP 508 project name grammar: it must start and end
// with an alphanumeric character and may contain runs of ".", "-", "_".
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// nameSeparators matches the character runs that PyPI treats as
// equivalent when comparing project names.
var nameSeparators = regexp.MustCompile(`[-_.]+`)

// ValidName reports whether name is a well-formed package name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// CanonicalName normalizes a package name the way the package index
// does: lowercase, with runs of "-", "_" and "." collapsed to a single
// "-". "Zest.Releaser" and "zest-releaser" identify the same project.
func CanonicalName(name string) string {
	return strings.ToLower(nameSeparators.ReplaceAllString(name, "-"))
}
