package parsers

import (
	"fmt"
	"strings"

	"github.com/platewell/labkit/internal/models"
	"github.com/platewell/labkit/requirements"
)

// parseSpec extracts one dependency record from a PEP 508 style
// requirement spec as found in pyproject.toml or setup.py. Multi-clause
// constraints keep only their first clause; bare names yield an
// unversioned record.
func parseSpec(path, spec string) (models.Dependency, bool) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return models.Dependency{}, false
	}

	// Only the first clause of "pkg>=2.0,<3.0" carries the base version.
	if idx := indexOutsideBrackets(spec, ','); idx >= 0 {
		spec = strings.TrimSpace(spec[:idx])
	}

	if req, err := requirements.ParseRequirement(spec); err == nil {
		return models.Dependency{
			Name:       req.Name,
			Extras:     req.Extras,
			Op:         req.Op,
			Version:    req.Version,
			Ecosystem:  models.EcosystemPyPI,
			SourceFile: path,
		}, true
	}

	// Bare name, optionally with extras: "coverage", "flask[async]".
	name := spec
	if idx := strings.Index(name, ";"); idx >= 0 {
		name = strings.TrimSpace(name[:idx])
	}
	var extras []string
	if open := strings.Index(name, "["); open >= 0 {
		end := strings.Index(name, "]")
		if end < open {
			return models.Dependency{}, false
		}
		for _, e := range strings.Split(name[open+1:end], ",") {
			if e = strings.TrimSpace(e); e != "" {
				extras = append(extras, e)
			}
		}
		name = strings.TrimSpace(name[:open])
	}
	if !requirements.ValidName(name) {
		return models.Dependency{}, false
	}

	return models.Dependency{
		Name:       name,
		Extras:     extras,
		Ecosystem:  models.EcosystemPyPI,
		SourceFile: path,
	}, true
}

// specProblem records a dependency spec that did not parse
func specProblem(path, spec string) models.Problem {
	return models.Problem{
		Source:   path,
		Rule:     requirements.RuleMalformed,
		Severity: models.SeverityWarning,
		Message:  fmt.Sprintf("unparseable dependency spec %q", spec),
	}
}

// indexOutsideBrackets finds the first ch not inside an extras selector
func indexOutsideBrackets(s string, ch byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case ch:
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
