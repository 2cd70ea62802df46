package requirements

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// reqPattern matches one requirement: name, optional [extras], a version
// constraint operator, a version token, then an optional environment
// marker and an optional inline comment.
var reqPattern = regexp.MustCompile(
	`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)` + // name
		`\s*(\[[^\]]*\])?` + // extras
		`\s*(===|==|!=|<=|>=|~=|<|>)` + // operator
		`\s*([A-Za-z0-9][A-Za-z0-9_.!+*-]*)` + // version
		`\s*(;[^#]*)?` + // environment marker
		`(#.*)?$`) // inline comment

// Parse reads a manifest. It never fails: lines that do not conform to
// the format are kept as Malformed lines carrying a descriptive error,
// so that Validate can report them with their line numbers. src names
// the origin (usually a file path) and is echoed in diagnostics.
func Parse(src string, data []byte) *File {
	f := &File{Source: src}
	text := string(data)
	if text == "" {
		return f
	}

	f.finalNewline = strings.HasSuffix(text, "\n")
	for i, raw := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		f.Lines = append(f.Lines, classify(i+1, raw))
	}
	return f
}

// ParseLine classifies a single manifest line without a surrounding
// file. The returned Line has Number 0.
func ParseLine(text string) Line {
	return classify(0, text)
}

// ParseRequirement parses one requirement expression such as
// "zest.releaser[recommended]==6.22.1". Leading and trailing whitespace
// is ignored. It rejects blank lines, comments and option lines.
func ParseRequirement(s string) (*Requirement, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "-") {
		return nil, errors.New("not a requirement line")
	}
	return parseRequirement(trimmed)
}

// classify decides what kind of line raw is. The raw text is preserved
// untouched; a trailing carriage return is tolerated for CRLF input.
func classify(n int, raw string) Line {
	text := strings.TrimRight(raw, "\r")
	trimmed := strings.TrimSpace(text)

	switch {
	case trimmed == "":
		return Line{Number: n, Kind: Blank, Raw: raw}

	case strings.HasPrefix(trimmed, "#"):
		// A comment whose body parses as a requirement is a disabled
		// dependency, re-enabled by removing the leading marker.
		body := strings.TrimSpace(trimmed[1:])
		if req, err := parseRequirement(body); err == nil {
			req.Line = n
			req.Disabled = true
			return Line{Number: n, Kind: DisabledPin, Raw: raw, Req: req}
		}
		return Line{Number: n, Kind: Comment, Raw: raw}

	case strings.HasPrefix(trimmed, "-"):
		// pip option lines (-r, -e, --index-url ...) are legal input but
		// contribute no dependency record.
		return Line{Number: n, Kind: Option, Raw: raw}
	}

	req, err := parseRequirement(trimmed)
	if err != nil {
		return Line{Number: n, Kind: Malformed, Raw: raw, Err: err}
	}
	req.Line = n
	return Line{Number: n, Kind: Pin, Raw: raw, Req: req}
}

func parseRequirement(s string) (*Requirement, error) {
	m := reqPattern.FindStringSubmatch(s)
	if m == nil {
		return nil, describeFailure(s)
	}

	req := &Requirement{Name: m[1], Op: m[3], Version: m[4]}
	if m[2] != "" {
		extras, err := parseExtras(m[2])
		if err != nil {
			return nil, err
		}
		req.Extras = extras
	}
	if m[5] != "" {
		req.Marker = strings.TrimSpace(strings.TrimPrefix(m[5], ";"))
	}
	if m[6] != "" {
		req.Comment = strings.TrimSpace(strings.TrimPrefix(m[6], "#"))
	}
	return req, nil
}

// parseExtras splits a bracketed extras selector. "[recommended]" yields
// ["recommended"]; "[]" yields an empty non-nil slice so Validate can
// tell empty brackets apart from no brackets.
func parseExtras(bracketed string) ([]string, error) {
	inner := strings.TrimSpace(bracketed[1 : len(bracketed)-1])
	if inner == "" {
		return []string{}, nil
	}

	parts := strings.Split(inner, ",")
	extras := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.TrimSpace(p)
		if !ValidName(name) {
			return nil, fmt.Errorf("invalid extra name %q", name)
		}
		extras = append(extras, name)
	}
	return extras, nil
}

// describeFailure produces a human-readable reason for a line that did
// not match the requirement grammar.
func describeFailure(s string) error {
	if !strings.ContainsAny(s, "<>=~!") {
		return errors.New("missing version constraint (expected name==version)")
	}

	name := s
	if idx := strings.IndexAny(s, "[<>=~!;# \t"); idx >= 0 {
		name = s[:idx]
	}
	if !ValidName(strings.TrimSpace(name)) {
		return fmt.Errorf("invalid package name %q", strings.TrimSpace(name))
	}
	if strings.Contains(s, ",") {
		return errors.New("multiple version clauses are not supported in a pinned manifest")
	}
	return errors.New("line does not match name[extras]==version")
}
