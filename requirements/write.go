package requirements

import (
	"sort"
	"strings"
)

// String renders the requirement in canonical form:
// name[extras]==version ; marker  # comment. The disabled marker is a
// property of the containing line, not of the requirement, so it is
// never included here.
func (r *Requirement) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	if r.Extras != nil {
		sb.WriteByte('[')
		sb.WriteString(strings.Join(r.Extras, ","))
		sb.WriteByte(']')
	}
	sb.WriteString(r.Op)
	sb.WriteString(r.Version)
	if r.Marker != "" {
		sb.WriteString(" ; ")
		sb.WriteString(r.Marker)
	}
	if r.Comment != "" {
		sb.WriteString("  # ")
		sb.WriteString(r.Comment)
	}
	return sb.String()
}

// Bytes renders the file. For a file that has not been edited since
// Parse, the output is byte-identical to the input, including malformed
// lines, comments and the presence or absence of a final newline.
func (f *File) Bytes() []byte {
	if len(f.Lines) == 0 {
		return []byte{}
	}
	raws := make([]string, len(f.Lines))
	for i := range f.Lines {
		raws[i] = f.Lines[i].Raw
	}
	out := strings.Join(raws, "\n")
	if f.finalNewline {
		out += "\n"
	}
	return []byte(out)
}

// Freeze renders only the enabled requirements, one per line, sorted by
// canonical name and normalized: lowercase canonical names, sorted
// lowercase extras, environment markers kept, inline comments dropped.
// Duplicate pins are rendered as-is; run Validate first to catch them.
func (f *File) Freeze() []byte {
	reqs := f.Requirements()
	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].CanonicalName() < reqs[j].CanonicalName()
	})

	var sb strings.Builder
	for _, r := range reqs {
		sb.WriteString(freezeString(r))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func freezeString(r *Requirement) string {
	var sb strings.Builder
	sb.WriteString(r.CanonicalName())
	if len(r.Extras) > 0 {
		extras := make([]string, len(r.Extras))
		for i, e := range r.Extras {
			extras[i] = strings.ToLower(e)
		}
		sort.Strings(extras)
		sb.WriteByte('[')
		sb.WriteString(strings.Join(extras, ","))
		sb.WriteByte(']')
	}
	sb.WriteString(r.Op)
	sb.WriteString(r.Version)
	if r.Marker != "" {
		sb.WriteString(" ; ")
		sb.WriteString(r.Marker)
	}
	return sb.String()
}
