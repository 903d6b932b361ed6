// Package globspec parses MSBuild-dialect include/exclude glob strings into
// a compact machine-consumable Specification, and drives a stateful,
// per-directory SpecMatcher (composed into a MatcherSet) against an
// external walker.
//
// Grounded on the shape of IgorBayerl-ReportGenerator's internal/glob
// package (a Glob type holding OriginalPattern/IgnoreCase, a cache keyed by
// pattern+casing) reworked around spec.md's prefix/wildcard/filename split
// instead of that package's whole-path regex expansion — brace expansion,
// `[...]` character classes, and regex are explicit non-goals here.
package globspec

import (
	"strings"

	"github.com/globkit/fileglob/internal/pathops"
	"github.com/globkit/fileglob/internal/wildcard"
)

// Specification is the parsed form of one include/exclude entry.
type Specification struct {
	// Original is the input string, unmodified.
	Original string
	// Normalized is Original with separators unified, consecutive
	// separators collapsed, runs of "**/**" collapsed to one "**", and
	// surrounding whitespace trimmed.
	Normalized string
	// FixedPath is the longest wildcard-free leading run of whole
	// segments (may be empty).
	FixedPath string
	// WildPath is the whole-segment run between FixedPath and FileName
	// (may be empty). Only WildPath may contain "**".
	WildPath string
	// FileName is the final segment. Never empty unless the whole
	// specification is empty.
	FileName string
	// HasAnyWildCards is true iff FixedPath/WildPath/FileName together
	// contain '*' or '?'.
	HasAnyWildCards bool
	// IsSimpleRecursiveMatch is true iff WildPath is exactly "**".
	IsSimpleRecursiveMatch bool
	// IsFullyQualified is true iff Normalized begins with a drive root,
	// UNC share, device prefix, or (on a POSIX host) a leading separator.
	IsFullyQualified bool
	// IsNestedRelative is true iff not fully qualified and Normalized
	// contains no ".." segment.
	IsNestedRelative bool

	sep          byte
	wildSegments []string // WildPath split into segments, cached
}

// Sep returns the platform separator this specification was parsed with.
func (s *Specification) Sep() byte { return s.sep }

// WildSegments returns the WildPath split into non-empty segments.
func (s *Specification) WildSegments() []string {
	return s.wildSegments
}

// Empty reports whether this is the placeholder specification produced by
// parsing an empty (or all-whitespace) string.
func (s *Specification) Empty() bool {
	return s.Original == "" || strings.TrimSpace(s.Original) == ""
}

// Key returns the comparison key used for equality/hashing, folding ASCII
// case when casing is CaseInsensitive — Specification equality is defined
// by Normalized under the configured casing.
func (s *Specification) Key(casing wildcard.Casing) string {
	if casing != wildcard.CaseInsensitive {
		return s.Normalized
	}
	return asciiLowerString(s.Normalized)
}

// Equal reports whether s and other have the same Normalized form under casing.
func (s *Specification) Equal(other *Specification, casing wildcard.Casing) bool {
	if s == nil || other == nil {
		return s == other
	}
	return wildcard.EqualLiteral(s.Normalized, other.Normalized, casing)
}

func asciiLowerString(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// Parse parses one specification string. sep is the platform separator to
// normalize onto; isWindowsHost governs drive/UNC/device-prefix recognition.
// An empty (or all-whitespace) raw produces the empty Specification used by
// Split, never an error.
func Parse(raw string, sep byte, isWindowsHost bool) *Specification {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return &Specification{Original: raw, sep: sep}
	}

	normalized := pathops.NormalizeSeparators(trimmed, sep, isWindowsHost)
	prefix, rest := pathops.SplitPrefix(normalized, isWindowsHost)

	segs := splitNonEmpty(rest, sep)
	for i, seg := range segs {
		segs[i] = Unescape(seg)
	}
	segs = collapseDoubleStarRuns(segs)
	if len(segs) > 0 && strings.HasPrefix(rest, string(sep)) {
		// A prefix such as a UNC share does not end in a separator; keep the
		// one that follows it.
		prefix += string(sep)
	}

	normalized = prefix + strings.Join(segs, string(sep))

	isFullyQualified := pathops.IsFullyQualified(normalized, isWindowsHost)
	isNestedRelative := !isFullyQualified && !containsDotDot(segs)

	fixedSegs, wildSegs, fileName := splitFixedWildFile(segs)

	spec := &Specification{
		Original:         raw,
		Normalized:       normalized,
		FixedPath:        prefix + strings.Join(fixedSegs, string(sep)),
		WildPath:         strings.Join(wildSegs, string(sep)),
		FileName:         fileName,
		IsFullyQualified: isFullyQualified,
		IsNestedRelative: isNestedRelative,
		sep:              sep,
		wildSegments:     wildSegs,
	}
	spec.HasAnyWildCards = strings.ContainsAny(spec.WildPath, "*?") || strings.ContainsAny(spec.FileName, "*?")
	spec.IsSimpleRecursiveMatch = spec.WildPath == "**"
	return spec
}

func containsDotDot(segs []string) bool {
	for _, s := range segs {
		if s == ".." {
			return true
		}
	}
	return false
}

// splitFixedWildFile implements spec.md §4.3 step 5-6: locate the first
// wildcard-containing segment; everything before it is fixed, the rest
// splits into wild segments plus a trailing file name.
func splitFixedWildFile(segs []string) (fixed, wild []string, fileName string) {
	if len(segs) == 0 {
		return nil, nil, ""
	}

	firstWild := -1
	for i, s := range segs {
		if strings.ContainsAny(s, "*?") {
			firstWild = i
			break
		}
	}

	if firstWild < 0 {
		// No wildcard anywhere: split like an ordinary path, last segment
		// is the file name, everything else is fixed.
		fixed = segs[:len(segs)-1]
		fileName = segs[len(segs)-1]
		return fixed, nil, fileName
	}

	fixed = segs[:firstWild]
	remainder := segs[firstWild:]
	fileName = remainder[len(remainder)-1]
	wild = append([]string{}, remainder[:len(remainder)-1]...)

	if fileName == "**" {
		fileName = "*"
		wild = append(wild, "**")
	}
	return fixed, wild, fileName
}

// collapseDoubleStarRuns collapses any run of two or more consecutive "**"
// segments into a single "**" segment.
func collapseDoubleStarRuns(segs []string) []string {
	out := make([]string, 0, len(segs))
	for _, s := range segs {
		if s == "**" && len(out) > 0 && out[len(out)-1] == "**" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func splitNonEmpty(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, string(sep))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Unescape decodes "%HH" (HH two ASCII hex digits) sequences in segment to
// the character with that byte value. Any other use of '%' is left
// literal, and a failed hex decode falls back to the original segment. If
// no '%' appears at all, the input is returned unchanged (sharing storage).
func Unescape(segment string) string {
	idx := strings.IndexByte(segment, '%')
	if idx < 0 {
		return segment
	}

	var b strings.Builder
	b.Grow(len(segment))
	b.WriteString(segment[:idx])

	i := idx
	for i < len(segment) {
		if segment[i] == '%' && i+2 < len(segment) && isHex(segment[i+1]) && isHex(segment[i+2]) {
			b.WriteByte(hexByte(segment[i+1], segment[i+2]))
			i += 3
			continue
		}
		b.WriteByte(segment[i])
		i++
	}
	return b.String()
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

func hexByte(hi, lo byte) byte {
	return hexVal(hi)<<4 | hexVal(lo)
}

// Split splits a ';'-separated specification list, trims whitespace around
// each entry, parses it, and dedups by Key(casing), preserving order of
// first occurrence. Empty entries are skipped silently.
func Split(list string, sep byte, isWindowsHost bool, casing wildcard.Casing) []*Specification {
	var out []*Specification
	seen := make(map[string]bool)

	for _, entry := range strings.Split(list, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		spec := Parse(entry, sep, isWindowsHost)
		key := spec.Key(casing)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, spec)
	}
	return out
}
