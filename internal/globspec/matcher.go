package globspec

import (
	"strings"

	"github.com/globkit/fileglob/internal/pathops"
	"github.com/globkit/fileglob/internal/wildcard"
)

// Mode distinguishes an include matcher from an exclude matcher.
type Mode int

const (
	Include Mode = iota
	Exclude
)

// SpecMatcher is the per-directory state machine that drives one parsed
// Specification against a walker, bound to a rootDirectory and a Mode.
//
// Grounded on IgorBayerl-ReportGenerator's internal/glob caching idea (a
// matcher carries its own small memo rather than recomputing per file), with
// the state shape itself taken from WoozyMasta-pathrules' directory-scoped
// Provider cache (sync-guarded per-directory memo, invalidated by the caller).
type SpecMatcher struct {
	spec          *Specification
	rootDirectory string
	fixedPrefix   string
	fixedSegs     []string
	wildSegs      []string
	mode          Mode
	dialect       wildcard.Dialect
	casing        wildcard.Casing
	sep           byte

	alwaysRecurse      bool
	endsInAnyDirectory bool
	isSubtreeExclude   bool

	cacheValid         bool
	cachedDir          string
	cachedFullyMatches bool
}

// NewSpecMatcher binds spec to rootDirectory for the given mode. casing is
// resolved against isWindowsHost if it is PlatformDefault.
func NewSpecMatcher(spec *Specification, rootDirectory string, mode Mode, dialect wildcard.Dialect, casing wildcard.Casing, isWindowsHost bool) *SpecMatcher {
	resolved := casing.Resolve(isWindowsHost)
	sep := spec.Sep()
	rootDirectory = strings.TrimRight(rootDirectory, string(sep))

	fixedPrefix := rootDirectory
	if spec.FixedPath != "" {
		fixedPrefix = joinPath(rootDirectory, spec.FixedPath, sep)
	}

	wildSegs := spec.WildSegments()

	m := &SpecMatcher{
		spec:          spec,
		rootDirectory: rootDirectory,
		fixedPrefix:   fixedPrefix,
		fixedSegs:     splitNonEmpty(spec.FixedPath, sep),
		wildSegs:      wildSegs,
		mode:          mode,
		dialect:       dialect,
		casing:        resolved,
		sep:           sep,
	}
	m.alwaysRecurse = len(wildSegs) > 0 && wildSegs[0] == "**"
	m.endsInAnyDirectory = len(wildSegs) > 0 && wildSegs[len(wildSegs)-1] == "**"
	// Open-question resolution (spec.md §9): an exclude whose FileName is the
	// bare "*" wildcard (e.g. "bin/**") is treated as a subtree exclude that
	// prunes recursion; any other exclude only rejects individual files.
	m.isSubtreeExclude = mode == Exclude && spec.FileName == "*"
	return m
}

// Mode reports whether this matcher is an include or exclude matcher.
func (m *SpecMatcher) Mode() Mode { return m.mode }

// AlwaysRecurse reports whether Normalized begins with "**" after FixedPath.
func (m *SpecMatcher) AlwaysRecurse() bool { return m.alwaysRecurse }

// EndsInAnyDirectory reports whether WildPath ends in a "**" segment.
func (m *SpecMatcher) EndsInAnyDirectory() bool { return m.endsInAnyDirectory }

// IsSubtreeExclude reports whether this exclude matcher prunes whole
// directories rather than only rejecting individual files.
func (m *SpecMatcher) IsSubtreeExclude() bool { return m.isSubtreeExclude }

func joinPath(a, b string, sep byte) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	if a[len(a)-1] == sep {
		return a + b
	}
	return a + string(sep) + b
}

// MatchesDirectory answers "should the walker descend into
// current_directory/name?" (matchForExclusion = false), or "does this
// directory itself match as an exclude target?" (matchForExclusion = true).
func (m *SpecMatcher) MatchesDirectory(currentDirectory, name string, matchForExclusion bool) bool {
	candidate := joinPath(currentDirectory, name, m.sep)
	if !pathops.IsSameOrSubdirectory(m.rootDirectory, candidate, m.sep, m.casing) {
		return false
	}

	if m.mode == Exclude {
		if !matchForExclusion || !m.isSubtreeExclude {
			return false
		}
		return m.directoryFullyMatches(candidate)
	}

	if m.alwaysRecurse && pathops.IsSameOrSubdirectory(m.fixedPrefix, currentDirectory, m.sep, m.casing) {
		return true
	}

	if !pathops.IsSameOrSubdirectory(m.fixedPrefix, candidate, m.sep, m.casing) {
		return m.withinFixedPathPrefix(candidate)
	}

	segs, ok := m.relativeSegments(currentDirectory, name)
	if !ok {
		return false
	}
	_, prefixOK := matchWildSegments(m.wildSegs, segs, m.dialect, m.casing)
	return prefixOK
}

// MatchesFile answers "does current_directory/name match this spec?".
func (m *SpecMatcher) MatchesFile(currentDirectory, name string) bool {
	if !pathops.IsSameOrSubdirectory(m.rootDirectory, currentDirectory, m.sep, m.casing) {
		return false
	}
	if !m.cacheValid || m.cachedDir != currentDirectory {
		m.cachedFullyMatches = m.directoryFullyMatches(strings.TrimRight(currentDirectory, string(m.sep)))
		m.cachedDir = currentDirectory
		m.cacheValid = true
	}
	if !m.cachedFullyMatches {
		return false
	}
	return wildcard.Matches(name, m.spec.FileName, m.dialect, m.casing)
}

// DirectoryFinished invalidates the per-directory cache. Must be called
// exactly once per directory the walker completes, in LIFO order.
func (m *SpecMatcher) DirectoryFinished() {
	m.cacheValid = false
	m.cachedFullyMatches = false
}

// withinFixedPathPrefix reports whether candidate is still a literal prefix
// of the fixed path on the way down to the effective fixed prefix (so the
// walker should keep descending even though WildPath matching hasn't begun).
func (m *SpecMatcher) withinFixedPathPrefix(candidate string) bool {
	cd := strings.TrimRight(candidate, string(m.sep))
	rootLen := len(m.rootDirectory)
	if len(cd) < rootLen || !pathops.EqualSegment(cd[:rootLen], m.rootDirectory, m.casing) {
		return false
	}
	rest := strings.TrimPrefix(cd[rootLen:], string(m.sep))
	var candSegs []string
	if rest != "" {
		candSegs = strings.Split(rest, string(m.sep))
	}
	if len(candSegs) > len(m.fixedSegs) {
		return false
	}
	for i, s := range candSegs {
		if !pathops.EqualSegment(s, m.fixedSegs[i], m.casing) {
			return false
		}
	}
	return true
}

// relativeSegments returns the path segments of current_directory/name that
// lie strictly below the matcher's effective fixed prefix.
func (m *SpecMatcher) relativeSegments(currentDirectory, name string) ([]string, bool) {
	cd := strings.TrimRight(currentDirectory, string(m.sep))
	if !pathops.IsSameOrSubdirectory(m.fixedPrefix, cd, m.sep, m.casing) {
		return nil, false
	}
	rest := strings.TrimPrefix(cd[len(m.fixedPrefix):], string(m.sep))
	e := NewSegmentEnumerator(rest, name, m.sep)
	var segs []string
	for e.MoveNext() {
		segs = append(segs, e.Current())
	}
	return segs, true
}

// directoryFullyMatches reports whether candidate's segments below the
// effective fixed prefix consume the whole WildPath (the directory itself
// fully satisfies FixedPath/WildPath, independent of any leaf file name).
func (m *SpecMatcher) directoryFullyMatches(candidate string) bool {
	if !pathops.IsSameOrSubdirectory(m.fixedPrefix, candidate, m.sep, m.casing) {
		return false
	}
	cd := strings.TrimRight(candidate, string(m.sep))
	rest := strings.TrimPrefix(cd[len(m.fixedPrefix):], string(m.sep))
	var segs []string
	if rest != "" {
		segs = strings.Split(rest, string(m.sep))
	}
	full, _ := matchWildSegments(m.wildSegs, segs, m.dialect, m.casing)
	return full
}

// matchWildSegments walks wild and segs in lockstep: non-"**" segments must
// align 1-for-1 via wildcard.Matches, "**" segments align with zero or more
// consecutive segs, tie-broken non-greedy (fewest segments first, expanding
// only on failure). full reports whether every seg and every wild segment
// (ignoring a trailing run of "**") were consumed; prefixOK reports whether
// segs form a valid (possibly partial) walk through wild, regardless of
// whether wild itself is fully consumed.
func matchWildSegments(wild, segs []string, dialect wildcard.Dialect, casing wildcard.Casing) (full, prefixOK bool) {
	i, j := 0, 0
	starIdx, starMatch := -1, 0
	for j < len(segs) {
		switch {
		case i < len(wild) && wild[i] == "**":
			starIdx = i
			starMatch = j
			i++
		case i < len(wild) && wildcard.Matches(segs[j], wild[i], dialect, casing):
			i++
			j++
		case starIdx >= 0:
			starMatch++
			j = starMatch
			i = starIdx + 1
		default:
			return false, false
		}
	}
	for i < len(wild) && wild[i] == "**" {
		i++
	}
	return i == len(wild), true
}
