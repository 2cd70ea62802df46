package requirements

import (
	"fmt"
	"strings"
)

// Severity grades a validation problem.
type Severity string

const (
	// SeverityError marks lines that violate the manifest format.
	SeverityError Severity = "error"
	// SeverityWarning marks lines that parse but deserve attention.
	SeverityWarning Severity = "warning"
)

// Rule identifiers reported by Validate.
const (
	RuleMalformed   = "malformed"
	RuleDuplicate   = "duplicate"
	RuleUnpinned    = "unpinned"
	RuleEmptyExtras = "empty-extras"
	RuleWhitespace  = "whitespace"
	RuleOption      = "option"
)

// Problem is one validation finding, located by source name and 1-based
// line number.
type Problem struct {
	Source   string
	Line     int
	Rule     string
	Severity Severity
	Message  string
}

// String formats the problem the way compilers report diagnostics.
func (p Problem) String() string {
	return fmt.Sprintf("%s:%d: %s [%s]", p.Source, p.Line, p.Message, p.Rule)
}

// Validate checks the manifest's well-formedness: every enabled line
// must be a pin, a comment or blank; no enabled canonical name may
// appear twice. Beyond those, it warns about non-exact constraint
// operators, empty extras selectors, pip option lines and stray
// whitespace. The file is not modified.
func (f *File) Validate() []Problem {
	var problems []Problem
	add := func(line int, rule string, sev Severity, format string, args ...any) {
		problems = append(problems, Problem{
			Source:   f.Source,
			Line:     line,
			Rule:     rule,
			Severity: sev,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	firstPin := make(map[string]int)
	for _, ln := range f.Lines {
		switch ln.Kind {
		case Malformed:
			add(ln.Number, RuleMalformed, SeverityError, "%s", ln.Err)

		case Option:
			add(ln.Number, RuleOption, SeverityWarning,
				"pip option line is not checked against the pin rules")

		case Pin, DisabledPin:
			req := ln.Req
			if ws := whitespaceDamage(ln.Raw); ws != "" {
				add(ln.Number, RuleWhitespace, SeverityWarning, "%s", ws)
			}
			if req.Extras != nil && len(req.Extras) == 0 {
				add(ln.Number, RuleEmptyExtras, SeverityWarning,
					"empty extras selector on %q", req.Name)
			}
			if ln.Kind == DisabledPin {
				continue
			}
			if first, dup := firstPin[req.CanonicalName()]; dup {
				add(ln.Number, RuleDuplicate, SeverityError,
					"%q is already pinned on line %d", req.Name, first)
			} else {
				firstPin[req.CanonicalName()] = ln.Number
			}
			if !req.Pinned() {
				add(ln.Number, RuleUnpinned, SeverityWarning,
					"%q is not pinned to an exact version (%s%s)", req.Name, req.Op, req.Version)
			}
		}
	}
	return problems
}

// whitespaceDamage describes leading or trailing whitespace on a
// requirement line, or returns "" when the line is clean.
func whitespaceDamage(raw string) string {
	text := strings.TrimRight(raw, "\r")
	leading := text != strings.TrimLeft(text, " \t")
	trailing := text != strings.TrimRight(text, " \t")
	switch {
	case leading && trailing:
		return "leading and trailing whitespace"
	case leading:
		return "leading whitespace before requirement"
	case trailing:
		return "trailing whitespace after requirement"
	}
	return ""
}
