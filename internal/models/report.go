package models

import "sort"

// Severity grades a problem found in a manifest
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Problem represents a single lint finding inside a manifest
type Problem struct {
	Source   string // Manifest the problem was found in
	Line     int    // 1-based line number
	Rule     string // Stable rule identifier, e.g. "duplicate"
	Severity Severity
	Message  string
}

// Outdated pairs a pinned dependency with what the package index offers
type Outdated struct {
	Dependency Dependency
	Latest     string // Newest release, empty when the index does not know the package
	Published  bool   // Whether the pinned version exists on the index
}

// Report collects everything a scan produced
type Report struct {
	Dependencies []Dependency
	Problems     []Problem
	Outdated     []Outdated
}

// HasProblems returns true if the scan found anything to fix
func (r *Report) HasProblems() bool {
	return len(r.Problems) > 0
}

// HasErrors returns true if any problem is severe enough to fail on
func (r *Report) HasErrors() bool {
	return r.Errors() > 0
}

// Errors counts the problems with error severity
func (r *Report) Errors() int {
	n := 0
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts the problems with warning severity
func (r *Report) Warnings() int {
	n := 0
	for _, p := range r.Problems {
		if p.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Sources returns the sorted set of manifests the report covers.
func (r *Report) Sources() []string {
	seen := make(map[string]bool)
	for _, d := range r.Dependencies {
		if d.SourceFile != "" {
			seen[d.SourceFile] = true
		}
	}
	for _, p := range r.Problems {
		if p.Source != "" {
			seen[p.Source] = true
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
