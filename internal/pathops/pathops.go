// Package pathops implements the path-string primitives the glob matching
// core needs: separator normalization, `.`/`..` collapse, same-or-subdirectory
// tests, and provable mutual exclusivity of two wildcard expressions.
//
// It intentionally does not cover full path canonicalization, relative-path
// construction, or OS-default casing detection beyond what the core needs —
// those remain the caller's concern.
package pathops

import (
	"strings"

	"github.com/globkit/fileglob/internal/wildcard"
)

// Casing is an alias of wildcard.Casing: path comparisons and single-segment
// wildcard comparisons share one casing policy throughout the core.
type Casing = wildcard.Casing

// Re-exported so callers that only need path operations need not import
// the wildcard package directly for the casing constants.
const (
	CaseSensitive   = wildcard.CaseSensitive
	CaseInsensitive = wildcard.CaseInsensitive
	PlatformDefault = wildcard.PlatformDefault
)

// EqualSegment compares two path segments (or literal runs) under casing.
func EqualSegment(a, b string, casing Casing) bool {
	if casing == CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// PrefixKind classifies the fixed root a path begins with.
type PrefixKind int

const (
	// PrefixNone means the path is relative, with no recognized root.
	PrefixNone PrefixKind = iota
	// PrefixDriveRooted is `X:\...` — fully qualified.
	PrefixDriveRooted
	// PrefixDriveRelative is `X:...` without a separator after the colon — not fully qualified.
	PrefixDriveRelative
	// PrefixPosixRoot is a leading `/` on a POSIX host.
	PrefixPosixRoot
	// PrefixUNC is `\\server\share\...`.
	PrefixUNC
	// PrefixDevice is `\\.\...` or `\\?\...`, not followed by `UNC\`.
	PrefixDevice
	// PrefixDeviceUNC is `\\.\UNC\server\share\...` or `\\?\UNC\server\share\...`.
	PrefixDeviceUNC
)

// classifyPrefix inspects the start of path and returns the kind of root it
// carries plus the length, in bytes, of the literal prefix that must be
// preserved verbatim.
//
// Both '/' and '\\' count as separators here, so it classifies raw input
// (before NormalizeSeparators) and already-normalized paths alike; the
// prefix's casing and separator run are left for the caller to preserve.
func classifyPrefix(path string, isWindowsHost bool) (PrefixKind, int) {
	n := len(path)
	if n == 0 {
		return PrefixNone, 0
	}

	isSep := func(b byte) bool { return b == '/' || b == '\\' }

	if n >= 2 && isSep(path[0]) && isSep(path[1]) {
		// Device prefixes: \\.\ or \\?\, optionally followed by UNC\.
		if n >= 4 && (path[2] == '.' || path[2] == '?') && isSep(path[3]) {
			rest := path[4:]
			if hasUNCSegment(rest) {
				uncEnd := 4 + uncPrefixLen(rest)
				return PrefixDeviceUNC, uncEnd
			}
			return PrefixDevice, 4
		}
		// UNC share: \\server\share
		end := uncShareEnd(path[2:])
		if end >= 0 {
			return PrefixUNC, 2 + end
		}
		return PrefixNone, 0
	}

	if isWindowsHost && n >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		if n >= 3 && isSep(path[2]) {
			return PrefixDriveRooted, 3
		}
		return PrefixDriveRelative, 2
	}

	if !isWindowsHost && isSep(path[0]) {
		return PrefixPosixRoot, 1
	}
	// On a Windows host a bare leading separator is drive-relative-to-current-drive,
	// which this core treats as PrefixNone (relative): it carries no fixed root
	// of its own to preserve, matching the "not fully qualified" classification
	// spec.md §6 implies for anything short of a drive, UNC, or device prefix.
	return PrefixNone, 0
}

func isDriveLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// hasUNCSegment reports whether rest begins with "UNC" followed by a separator,
// case-insensitively (device UNC paths use this literal marker).
func hasUNCSegment(rest string) bool {
	if len(rest) < 4 {
		return false
	}
	if !strings.EqualFold(rest[:3], "UNC") {
		return false
	}
	return rest[3] == '/' || rest[3] == '\\'
}

// uncPrefixLen returns the length of "UNC\server\share" within rest.
func uncPrefixLen(rest string) int {
	// rest starts with "UNC\" or "UNC/"; consume that plus server and share segments.
	i := 4
	i += segmentLen(rest[i:])
	if i < len(rest) && (rest[i] == '/' || rest[i] == '\\') {
		i++
		i += segmentLen(rest[i:])
	}
	return i
}

// uncShareEnd returns the length of "server\share" within rest, or -1 if
// rest does not contain at least two segments.
func uncShareEnd(rest string) int {
	serverLen := segmentLen(rest)
	if serverLen == 0 || serverLen >= len(rest) {
		return -1
	}
	i := serverLen + 1
	shareLen := segmentLen(rest[i:])
	if shareLen == 0 {
		return -1
	}
	return i + shareLen
}

func segmentLen(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '/' || s[i] == '\\' {
			return i
		}
	}
	return len(s)
}

// SplitPrefix returns the recognized root prefix of path (preserved
// verbatim, including its internal separator run) and the remainder that
// follows it. For a relative path the prefix is empty.
func SplitPrefix(path string, isWindowsHost bool) (prefix, rest string) {
	_, n := classifyPrefix(path, isWindowsHost)
	return path[:n], path[n:]
}

// IsFullyQualified reports whether path carries a root that fixes its
// location regardless of any current directory: a rooted drive, a UNC
// share, a device path, or (on a POSIX host) a leading separator.
func IsFullyQualified(path string, isWindowsHost bool) bool {
	switch kind, _ := classifyPrefix(path, isWindowsHost); kind {
	case PrefixDriveRooted, PrefixUNC, PrefixDevice, PrefixDeviceUNC, PrefixPosixRoot:
		return true
	default:
		return false
	}
}

// NormalizeSeparators replaces the alternate separator with sep, collapses
// runs of separators to one, and leaves the leading device/UNC prefix intact
// (its internal separator run is preserved verbatim, per spec.md §6).
func NormalizeSeparators(path string, sep byte, isWindowsHost bool) string {
	if path == "" {
		return path
	}
	kind, prefixLen := classifyPrefix(path, isWindowsHost)

	var b strings.Builder
	b.Grow(len(path))

	writePrefix := func(raw string) {
		for i := 0; i < len(raw); i++ {
			c := raw[i]
			if c == '/' || c == '\\' {
				c = sep
			}
			b.WriteByte(c)
		}
	}

	rest := path
	switch kind {
	case PrefixUNC, PrefixDevice, PrefixDeviceUNC, PrefixDriveRooted, PrefixDriveRelative:
		writePrefix(path[:prefixLen])
		rest = path[prefixLen:]
	case PrefixPosixRoot:
		b.WriteByte(sep)
		rest = path[prefixLen:]
	}

	written := b.String()
	lastWasSep := len(written) > 0 && written[len(written)-1] == sep
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c == '/' || c == '\\' {
			if lastWasSep {
				continue
			}
			b.WriteByte(sep)
			lastWasSep = true
			continue
		}
		b.WriteByte(c)
		lastWasSep = false
	}

	return b.String()
}

// RemoveRelativeSegments resolves `.` and `..` segments against the fixed
// root of path (empty, drive, UNC, or device — see spec.md §6). `..` at or
// above the root is absorbed for fully rooted paths and kept for relative
// paths. Trailing separators are preserved iff present in the input;
// consecutive separators are collapsed as a side effect of this pass.
func RemoveRelativeSegments(path string, sep byte, isWindowsHost bool) string {
	if path == "" {
		return path
	}
	normalized := NormalizeSeparators(path, sep, isWindowsHost)
	kind, prefixLen := classifyPrefix(normalized, isWindowsHost)
	prefix := normalized[:prefixLen]
	rest := normalized[prefixLen:]

	hadTrailingSep := len(rest) > 0 && rest[len(rest)-1] == sep
	needsSepAfterPrefix := prefix != "" && rest != "" && rest[0] == sep
	rest = strings.Trim(rest, string(sep))

	rooted := kind == PrefixDriveRooted || kind == PrefixUNC || kind == PrefixDevice ||
		kind == PrefixDeviceUNC || kind == PrefixPosixRoot

	var segs []string
	if rest != "" {
		segs = strings.Split(rest, string(sep))
	}

	out := make([]string, 0, len(segs))
	for _, s := range segs {
		switch s {
		case ".":
			continue
		case "..":
			if len(out) > 0 && out[len(out)-1] != ".." {
				out = out[:len(out)-1]
				continue
			}
			if rooted {
				// Absorbed: cannot go above a fixed root.
				continue
			}
			out = append(out, s)
		default:
			out = append(out, s)
		}
	}

	result := prefix
	if len(out) > 0 && needsSepAfterPrefix {
		result += string(sep)
	}
	result += strings.Join(out, string(sep))
	if len(out) > 0 && hadTrailingSep {
		result += string(sep)
	} else if len(out) == 0 && rooted && hadTrailingSep {
		result += string(sep)
	}
	if result == "" {
		return "."
	}
	return result
}

// IsSameOrSubdirectory reports whether b equals a, or starts with a followed
// by a separator. Either argument may carry its own trailing separator.
func IsSameOrSubdirectory(a, b string, sep byte, casing Casing) bool {
	a = strings.TrimRight(a, string(sep))
	bTrimmed := strings.TrimRight(b, string(sep))

	if EqualSegment(a, bTrimmed, casing) {
		return true
	}
	if len(bTrimmed) <= len(a) {
		return false
	}
	prefix := bTrimmed[:len(a)]
	if !EqualSegment(prefix, a, casing) {
		return false
	}
	return bTrimmed[len(a)] == sep
}

// AreExpressionsExclusive returns true only when it can prove no string
// matches both p1 and p2 under the given dialect and casing. It never
// produces a false positive; a false negative (returning false when the
// expressions happen to be exclusive) is always acceptable.
func AreExpressionsExclusive(p1, p2 string, dialect wildcard.Dialect, casing wildcard.Casing) bool {
	w1, w2 := hasWildcard(p1), hasWildcard(p2)

	if !w1 && !w2 {
		return !wildcard.EqualLiteral(p1, p2, casing)
	}

	if !w1 {
		return !wildcard.Matches(p1, p2, dialect, casing)
	}
	if !w2 {
		return !wildcard.Matches(p2, p1, dialect, casing)
	}

	if isMatchAnything(p1, dialect) || isMatchAnything(p2, dialect) {
		return false
	}

	prefix1, suffix1 := fixedPrefixSuffix(p1)
	prefix2, suffix2 := fixedPrefixSuffix(p2)

	if incompatiblePrefixes(prefix1, prefix2, casing) {
		return true
	}
	if incompatibleSuffixes(suffix1, suffix2, casing) {
		return true
	}
	return false
}

func hasWildcard(p string) bool {
	return strings.ContainsAny(p, "*?")
}

func isMatchAnything(p string, dialect wildcard.Dialect) bool {
	if p == "*" {
		return true
	}
	if dialect == wildcard.Win32 && p == "*.*" {
		return true
	}
	return false
}

// fixedPrefixSuffix returns the literal run before the first '*'/'?' and the
// literal run after the last '*'/'?' in p.
func fixedPrefixSuffix(p string) (prefix, suffix string) {
	first := strings.IndexAny(p, "*?")
	if first < 0 {
		return p, p
	}
	last := strings.LastIndexAny(p, "*?")
	return p[:first], p[last+1:]
}

func incompatiblePrefixes(a, b string, casing wildcard.Casing) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return !wildcard.EqualLiteral(a[:n], b[:n], casing)
}

func incompatibleSuffixes(a, b string, casing wildcard.Casing) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	return !wildcard.EqualLiteral(a[len(a)-n:], b[len(b)-n:], casing)
}
