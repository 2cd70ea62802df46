package parsers

import (
	"regexp"
	"strings"

	"github.com/platewell/labkit/internal/models"
)

// SetupPyParser extracts the declared package and requirement lists
// from legacy setup.py manifests
type SetupPyParser struct{}

// CanParse returns true for setup.py files
func (p *SetupPyParser) CanParse(filename string) bool {
	return filename == "setup.py"
}

var (
	// setupNamePattern matches the name= keyword of the setup() call
	setupNamePattern = regexp.MustCompile(`(?m)^[ \t]*name[ \t]*=[ \t]*["']([^"']+)["']`)

	// setupVersionPattern matches the version= keyword
	setupVersionPattern = regexp.MustCompile(`(?m)^[ \t]*version[ \t]*=[ \t]*["']([^"']+)["']`)

	// requiresPattern captures the bracketed list behind a requirement
	// keyword; the inner alternation tolerates extras selectors inside
	// the list
	requiresPattern = regexp.MustCompile(`(?s)(install_requires|tests_require|setup_requires)\s*=\s*\[((?:[^\[\]]|\[[^\]]*\])*)\]`)

	// quotedPattern pulls the individual specs out of a requirement list
	quotedPattern = regexp.MustCompile(`["']([^"']+)["']`)
)

// ExtractPackageInfo returns the name and version a setup.py declares,
// empty strings when a keyword is absent or not a literal.
func ExtractPackageInfo(content []byte) (name, version string) {
	if m := setupNamePattern.FindSubmatch(content); m != nil {
		name = string(m[1])
	}
	if m := setupVersionPattern.FindSubmatch(content); m != nil {
		version = string(m[1])
	}
	return name, version
}

// Parse extracts the declared package and its requirement lists from
// setup.py content. This is a textual extraction: computed names or
// versions are reported as absent rather than evaluated.
func (p *SetupPyParser) Parse(filepath string, content []byte) ([]models.Dependency, []models.Problem, error) {
	var deps []models.Dependency
	var problems []models.Problem

	name, version := ExtractPackageInfo(content)
	if name != "" {
		self := models.Dependency{
			Name:       name,
			Version:    version,
			Ecosystem:  models.EcosystemPyPI,
			SourceFile: filepath,
			Line:       lineOf(content, setupNamePattern),
			Self:       true,
		}
		if version != "" {
			self.Op = "=="
		}
		deps = append(deps, self)
	}

	for _, list := range requiresPattern.FindAllSubmatch(content, -1) {
		for _, quoted := range quotedPattern.FindAllSubmatch(list[2], -1) {
			spec := string(quoted[1])
			dep, ok := parseSpec(filepath, spec)
			if !ok {
				problems = append(problems, specProblem(filepath, spec))
				continue
			}
			deps = append(deps, dep)
		}
	}

	return deps, problems, nil
}

// lineOf returns the 1-based line of a pattern's first match, 0 when
// the pattern does not match.
func lineOf(content []byte, re *regexp.Regexp) int {
	loc := re.FindIndex(content)
	if loc == nil {
		return 0
	}
	return 1 + strings.Count(string(content[:loc[0]]), "\n")
}
