package parsers

import "github.com/platewell/labkit/internal/models"

// Parser is the interface for dependency manifest parsers
type Parser interface {
	// CanParse returns true if this parser can handle the given filename
	CanParse(filename string) bool

	// Parse extracts dependency records and lint problems from the
	// file content
	Parse(filepath string, content []byte) ([]models.Dependency, []models.Problem, error)
}

// GetAllParsers returns all available parsers
func GetAllParsers(includeIndirect bool) []Parser {
	return []Parser{
		&RequirementsParser{},
		&PyProjectParser{},
		&SetupPyParser{},
		&GoModParser{IncludeIndirect: includeIndirect},
	}
}
