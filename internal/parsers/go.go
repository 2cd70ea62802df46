package parsers

import (
	"golang.org/x/mod/modfile"

	"github.com/platewell/labkit/internal/models"
)

// GoModParser parses go.mod files
type GoModParser struct {
	IncludeIndirect bool // Whether to include indirect dependencies
}

// CanParse returns true for go.mod files
func (p *GoModParser) CanParse(filename string) bool {
	return filename == "go.mod"
}

// Parse extracts module requirements from go.mod content
func (p *GoModParser) Parse(filepath string, content []byte) ([]models.Dependency, []models.Problem, error) {
	mod, err := modfile.Parse(filepath, content, nil)
	if err != nil {
		return nil, nil, err
	}

	var deps []models.Dependency
	for _, req := range mod.Require {
		// Skip indirect deps unless explicitly requested
		if req.Indirect && !p.IncludeIndirect {
			continue
		}

		line := 0
		if req.Syntax != nil {
			line = req.Syntax.Start.Line
		}

		deps = append(deps, models.Dependency{
			Name:       req.Mod.Path,
			Op:         "==",
			Version:    req.Mod.Version,
			Ecosystem:  models.EcosystemGo,
			SourceFile: filepath,
			Line:       line,
		})
	}

	return deps, nil, nil
}
