package clients

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Newer reports whether candidate is a strictly newer release than
// current. When either side does not parse as a version the comparison
// falls back to inequality so odd schemes still surface.
func Newer(current, candidate string) bool {
	cur, errCur := semver.NewVersion(current)
	cand, errCand := semver.NewVersion(candidate)
	if errCur != nil || errCand != nil {
		return current != candidate
	}
	return cand.GreaterThan(cur)
}

// SortVersions orders version strings ascending, oldest first.
// Unparseable versions sort before everything else.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		vi, errI := semver.NewVersion(versions[i])
		vj, errJ := semver.NewVersion(versions[j])
		switch {
		case errI != nil && errJ != nil:
			return versions[i] < versions[j]
		case errI != nil:
			return true
		case errJ != nil:
			return false
		}
		return vi.LessThan(vj)
	})
}
