package requirements

import (
	"errors"
	"fmt"
	"strings"
)

// Add appends an enabled pin to the end of the file. It fails when the
// name is not well-formed or when an enabled pin with the same canonical
// name already exists. An empty Op defaults to "==". The edited file
// always ends with a final newline.
func (f *File) Add(req *Requirement) error {
	if req == nil {
		return errors.New("nil requirement")
	}
	if !ValidName(req.Name) {
		return fmt.Errorf("invalid package name %q", req.Name)
	}
	if req.Version == "" {
		return fmt.Errorf("no version given for %q", req.Name)
	}
	if f.Lookup(req.Name) != nil {
		return fmt.Errorf("%q is already pinned", req.Name)
	}

	r := *req
	if r.Op == "" {
		r.Op = "=="
	}
	f.Lines = append(f.Lines, classify(len(f.Lines)+1, r.String()))
	f.finalNewline = true
	return nil
}

// Remove deletes the line pinning name, whether enabled or disabled.
func (f *File) Remove(name string) error {
	i := f.lookupLine(name, Pin)
	if i < 0 {
		i = f.lookupLine(name, DisabledPin)
	}
	if i < 0 {
		return fmt.Errorf("%q is not pinned", name)
	}
	f.Lines = append(f.Lines[:i], f.Lines[i+1:]...)
	f.renumber()
	return nil
}

// Disable comments out the enabled pin for name by prefixing the line
// with "#". The rest of the line is preserved byte-for-byte.
func (f *File) Disable(name string) error {
	i := f.lookupLine(name, Pin)
	if i < 0 {
		return fmt.Errorf("no enabled pin for %q", name)
	}
	f.setRaw(i, "#"+f.Lines[i].Raw)
	return nil
}

// Enable re-activates the disabled pin for name by stripping the leading
// "#" marker and any whitespace around it.
func (f *File) Enable(name string) error {
	i := f.lookupLine(name, DisabledPin)
	if i < 0 {
		return fmt.Errorf("no disabled pin for %q", name)
	}
	raw := f.Lines[i].Raw
	body := raw[strings.Index(raw, "#")+1:]
	f.setRaw(i, strings.TrimSpace(body))
	return nil
}

// SetVersion changes the version of the enabled pin for name. The line
// is re-rendered in canonical form, keeping extras, marker and inline
// comment.
func (f *File) SetVersion(name, version string) error {
	if version == "" {
		return fmt.Errorf("no version given for %q", name)
	}
	i := f.lookupLine(name, Pin)
	if i < 0 {
		return fmt.Errorf("no enabled pin for %q", name)
	}
	r := *f.Lines[i].Req
	r.Version = version
	f.setRaw(i, r.String())
	return nil
}

// setRaw replaces the raw text of line i and reclassifies it so Kind and
// Req stay consistent with the new text.
func (f *File) setRaw(i int, raw string) {
	f.Lines[i] = classify(f.Lines[i].Number, raw)
}

// renumber restores the invariant that line numbers are 1-based and
// contiguous after insertions or deletions.
func (f *File) renumber() {
	for i := range f.Lines {
		f.Lines[i].Number = i + 1
		if f.Lines[i].Req != nil {
			f.Lines[i].Req.Line = i + 1
		}
	}
}
