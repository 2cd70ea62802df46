package parsers

import (
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/platewell/labkit/internal/models"
)

// PyProjectParser parses pyproject.toml files
type PyProjectParser struct{}

// CanParse returns true for pyproject.toml files
func (p *PyProjectParser) CanParse(filename string) bool {
	return filename == "pyproject.toml"
}

// pyproject represents the slice of pyproject.toml the tool reads
type pyproject struct {
	Project struct {
		Name                 string              `toml:"name"`
		Version              string              `toml:"version"`
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name            string                 `toml:"name"`
			Version         string                 `toml:"version"`
			Dependencies    map[string]interface{} `toml:"dependencies"`
			DevDependencies map[string]interface{} `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// Parse extracts the declared package and its dependencies from
// pyproject.toml, covering both PEP 621 and Poetry layouts
func (p *PyProjectParser) Parse(filepath string, content []byte) ([]models.Dependency, []models.Problem, error) {
	var proj pyproject
	if err := toml.Unmarshal(content, &proj); err != nil {
		return nil, nil, err
	}

	var deps []models.Dependency
	var problems []models.Problem

	// The package the file itself defines.
	name, version := proj.Project.Name, proj.Project.Version
	if name == "" {
		name, version = proj.Tool.Poetry.Name, proj.Tool.Poetry.Version
	}
	if name != "" {
		self := models.Dependency{
			Name:       name,
			Version:    version,
			Ecosystem:  models.EcosystemPyPI,
			SourceFile: filepath,
			Self:       true,
		}
		if version != "" {
			self.Op = "=="
		}
		deps = append(deps, self)
	}

	// PEP 621 dependencies (project.dependencies)
	for _, spec := range proj.Project.Dependencies {
		dep, ok := parseSpec(filepath, spec)
		if !ok {
			problems = append(problems, specProblem(filepath, spec))
			continue
		}
		deps = append(deps, dep)
	}

	// Optional feature groups
	for _, group := range sortedKeys(proj.Project.OptionalDependencies) {
		for _, spec := range proj.Project.OptionalDependencies[group] {
			dep, ok := parseSpec(filepath, spec)
			if !ok {
				problems = append(problems, specProblem(filepath, spec))
				continue
			}
			deps = append(deps, dep)
		}
	}

	// Poetry dependencies
	for _, name := range sortedKeys(proj.Tool.Poetry.Dependencies) {
		if strings.EqualFold(name, "python") {
			continue
		}
		deps = append(deps, poetryRecord(filepath, name, proj.Tool.Poetry.Dependencies[name]))
	}
	for _, name := range sortedKeys(proj.Tool.Poetry.DevDependencies) {
		if strings.EqualFold(name, "python") {
			continue
		}
		deps = append(deps, poetryRecord(filepath, name, proj.Tool.Poetry.DevDependencies[name]))
	}

	return deps, problems, nil
}

// poetryRecord converts one Poetry constraint into a dependency record.
// Caret and tilde constraints are ranges; they are recorded with their
// base version behind a ">=" so reports stay honest about the range.
func poetryRecord(path, name string, val interface{}) models.Dependency {
	dep := models.Dependency{
		Name:       name,
		Ecosystem:  models.EcosystemPyPI,
		SourceFile: path,
	}

	var constraint string
	switch v := val.(type) {
	case string:
		constraint = v
	case map[string]interface{}:
		if ver, ok := v["version"].(string); ok {
			constraint = ver
		}
	}
	constraint = strings.TrimSpace(constraint)

	switch {
	case constraint == "" || constraint == "*":
		// Any version; nothing to record.
	case strings.HasPrefix(constraint, "^"):
		dep.Op = ">="
		dep.Version = strings.TrimPrefix(constraint, "^")
	case strings.HasPrefix(constraint, "~") && !strings.HasPrefix(constraint, "~="):
		dep.Op = ">="
		dep.Version = strings.TrimPrefix(constraint, "~")
	case strings.ContainsAny(constraint[:1], "<>=!~"):
		if d, ok := parseSpec(path, name+constraint); ok {
			dep.Op, dep.Version = d.Op, d.Version
		}
	default:
		// A bare version is an exact pin in Poetry.
		dep.Op = "=="
		dep.Version = constraint
	}

	return dep
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
