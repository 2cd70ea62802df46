// Package requirements reads, validates, edits, and writes pip-style
// pinned requirement manifests (requirements.txt, requirements-dev.txt
// and friends).
//
// A manifest is a line-oriented file where each non-blank, non-comment
// line pins one package to an exact version:
//
//	pytest==6.2.3
//	zest.releaser[recommended]==6.22.1
//	#pytest-timeout==1.3.4
//
// Lines beginning with # are comments; a comment whose body is itself a
// valid pin is treated as a disabled dependency that can be re-enabled
// by removing the marker. The package preserves every input byte so that
// an unmodified File writes back exactly what was read.
package requirements

// LineKind classifies one physical line of a manifest.
type LineKind int

const (
	// Blank is an empty or whitespace-only line.
	Blank LineKind = iota
	// Comment is a # line that does not contain a disabled pin.
	Comment
	// Pin is an enabled requirement line.
	Pin
	// DisabledPin is a commented-out requirement line (#name==version).
	DisabledPin
	// Option is a pip option line such as "-r base.txt" or "--index-url".
	Option
	// Malformed is a non-blank, non-comment line that does not parse.
	Malformed
)

// String returns a short name for the line kind.
func (k LineKind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Comment:
		return "comment"
	case Pin:
		return "pin"
	case DisabledPin:
		return "disabled"
	case Option:
		return "option"
	default:
		return "malformed"
	}
}

// Requirement is a single dependency record: a package name, an exact
// version constraint, an optional extras selector and an optional inline
// comment.
type Requirement struct {
	Name     string   // package name as written (e.g. "zest.releaser")
	Extras   []string // bracketed feature-set selector, nil if absent
	Op       string   // constraint operator, "==" for a well-formed pin
	Version  string   // version string (e.g. "6.2.3")
	Marker   string   // PEP 508 environment marker after ";", if any
	Comment  string   // inline comment text without the leading #
	Line     int      // 1-based line number in the source manifest
	Disabled bool     // true when the line is commented out
}

// Pinned reports whether the requirement is an exact version pin.
func (r *Requirement) Pinned() bool {
	return r.Op == "=="
}

// CanonicalName returns the requirement's name in PyPI canonical form.
func (r *Requirement) CanonicalName() string {
	return CanonicalName(r.Name)
}

// Line is one physical manifest line. Raw holds the exact source text
// without its trailing newline so the file can be reproduced verbatim.
type Line struct {
	Number int
	Kind   LineKind
	Raw    string
	Req    *Requirement // set for Pin and DisabledPin lines
	Err    error        // set for Malformed lines
}

// File is a parsed manifest: an ordered list of lines plus the name of
// the source it was read from. Line order carries no functional meaning
// for the dependency set, but it is preserved for round-tripping.
type File struct {
	Source string
	Lines  []Line

	// finalNewline records whether the source ended with a newline so
	// Bytes can reproduce the input exactly.
	finalNewline bool
}

// Requirements returns the enabled dependency records in file order.
func (f *File) Requirements() []*Requirement {
	var reqs []*Requirement
	for i := range f.Lines {
		if f.Lines[i].Kind == Pin {
			reqs = append(reqs, f.Lines[i].Req)
		}
	}
	return reqs
}

// Disabled returns the commented-out dependency records in file order.
func (f *File) Disabled() []*Requirement {
	var reqs []*Requirement
	for i := range f.Lines {
		if f.Lines[i].Kind == DisabledPin {
			reqs = append(reqs, f.Lines[i].Req)
		}
	}
	return reqs
}

// Lookup returns the enabled requirement whose canonical name matches
// name, or nil if the manifest does not pin it.
func (f *File) Lookup(name string) *Requirement {
	want := CanonicalName(name)
	for i := range f.Lines {
		if f.Lines[i].Kind == Pin && f.Lines[i].Req.CanonicalName() == want {
			return f.Lines[i].Req
		}
	}
	return nil
}

// lookupLine returns the index of the line of the given kind whose
// requirement has the given canonical name, or -1 when absent.
func (f *File) lookupLine(name string, kind LineKind) int {
	want := CanonicalName(name)
	for i := range f.Lines {
		if f.Lines[i].Kind == kind && f.Lines[i].Req.CanonicalName() == want {
			return i
		}
	}
	return -1
}
