package parsers

import (
	"strings"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/requirements"
)

// RequirementsParser parses pip requirements manifests
type RequirementsParser struct{}

// CanParse returns true for requirements.txt style files, including
// the requirements-dev.txt and dev-requirements.txt variants
func (p *RequirementsParser) CanParse(filename string) bool {
	if !strings.HasSuffix(filename, ".txt") {
		return false
	}
	base := strings.TrimSuffix(filename, ".txt")
	return base == "requirements" ||
		strings.HasPrefix(base, "requirements-") ||
		strings.HasPrefix(base, "requirements_") ||
		strings.HasSuffix(base, "-requirements") ||
		strings.HasSuffix(base, "_requirements")
}

// Parse extracts pinned dependencies and lint problems from a
// requirements manifest. Disabled pins are kept as records so the
// other commands can see them.
func (p *RequirementsParser) Parse(filepath string, content []byte) ([]models.Dependency, []models.Problem, error) {
	f := requirements.Parse(filepath, content)

	var deps []models.Dependency
	for _, line := range f.Lines {
		if line.Req == nil {
			continue
		}
		deps = append(deps, pinRecord(filepath, line.Req))
	}

	return deps, convertProblems(f.Validate()), nil
}

// pinRecord converts one requirement line into a dependency record
func pinRecord(path string, req *requirements.Requirement) models.Dependency {
	return models.Dependency{
		Name:       req.Name,
		Extras:     req.Extras,
		Op:         req.Op,
		Version:    req.Version,
		Ecosystem:  models.EcosystemPyPI,
		SourceFile: path,
		Line:       req.Line,
		Disabled:   req.Disabled,
	}
}

// convertProblems lifts manifest lint findings into report problems
func convertProblems(problems []requirements.Problem) []models.Problem {
	var out []models.Problem
	for _, p := range problems {
		out = append(out, models.Problem{
			Source:   p.Source,
			Line:     p.Line,
			Rule:     p.Rule,
			Severity: models.Severity(p.Severity),
			Message:  p.Message,
		})
	}
	return out
}
