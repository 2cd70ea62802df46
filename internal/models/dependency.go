package models

// Ecosystem represents a package ecosystem
type Ecosystem string

const (
	EcosystemPyPI Ecosystem = "PyPI"
	EcosystemGo   Ecosystem = "Go"
)

// Dependency represents a single package requirement found in a manifest
type Dependency struct {
	Name      string
	Extras    []string // Optional feature groups, e.g. recommended in zest.releaser[recommended]
	Op        string   // Version operator, e.g. "==" or ">="
	Version   string
	Ecosystem Ecosystem

	SourceFile string // File where this dependency was found
	Line       int    // Line number in source file (if available)

	Disabled bool // Commented out in the manifest but kept for later
	Self     bool // The package the manifest itself defines, not a requirement
}

// Pinned reports whether the requirement names one exact version.
func (d Dependency) Pinned() bool {
	return d.Op == "==" && d.Version != ""
}

// String returns a human-readable representation
func (d Dependency) String() string {
	if d.Version == "" {
		return d.Name
	}
	return d.Name + "@" + d.Version
}
