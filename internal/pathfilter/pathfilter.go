// Package pathfilter applies a supplementary, post-enumeration '+'/'-'
// prefixed regex filter list to an already-matched set of paths. It is
// independent of internal/globspec entirely: MSBuild glob grammar has no
// regex support (spec.md's Non-goals), but a caller sometimes wants
// something a single glob can't express, e.g. "exclude anything with
// 'generated' anywhere in the path, case-insensitively".
//
// Grounded on IgorBayerl-ReportGenerator's internal/parser/filtering.DefaultFilter,
// which applies the same "+"/"-" prefixed filter grammar to assembly/class/
// file names: excludes checked first (any match rejects), then includes
// (any match accepts; no include filters at all means include everything).
package pathfilter

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter holds the compiled include/exclude regex filters built from one
// filter string list.
type Filter struct {
	includes  []*regexp.Regexp
	excludes  []*regexp.Regexp
	hasCustom bool
}

// New compiles filters (each entry must start with '+' or '-', or be
// empty) into a Filter. osIndependentSeparator, when true, makes a '/' or
// '\' in a filter match either separator in the candidate path, mirroring
// createFilterRegex's osIndependantPathSeparator option.
func New(filters []string, osIndependentSeparator bool) (*Filter, error) {
	f := &Filter{}
	var errs []string

	for _, raw := range filters {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		switch {
		case strings.HasPrefix(trimmed, "+"):
			re, err := compile(trimmed, osIndependentSeparator)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid include filter %q: %v", trimmed, err))
				continue
			}
			f.includes = append(f.includes, re)
		case strings.HasPrefix(trimmed, "-"):
			re, err := compile(trimmed, osIndependentSeparator)
			if err != nil {
				errs = append(errs, fmt.Sprintf("invalid exclude filter %q: %v", trimmed, err))
				continue
			}
			f.excludes = append(f.excludes, re)
		default:
			errs = append(errs, fmt.Sprintf("filter %q must start with '+' or '-'", trimmed))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("pathfilter: %s", strings.Join(errs, "; "))
	}

	f.hasCustom = len(f.includes) > 0 || len(f.excludes) > 0
	if len(f.includes) == 0 {
		includeAll, _ := compile("+*", false)
		f.includes = append(f.includes, includeAll)
	}
	return f, nil
}

// IsIncluded reports whether path survives the filter: rejected if any
// exclude matches, otherwise accepted if any include matches.
func (f *Filter) IsIncluded(path string) bool {
	for _, re := range f.excludes {
		if re.MatchString(path) {
			return false
		}
	}
	for _, re := range f.includes {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// HasCustomFilters reports whether any include or exclude filter was
// actually specified (as opposed to the implicit include-everything
// default).
func (f *Filter) HasCustomFilters() bool {
	return f.hasCustom
}

// Apply returns the subset of paths that IsIncluded accepts, preserving
// order.
func (f *Filter) Apply(paths []string) []string {
	if !f.hasCustom {
		return paths
	}
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if f.IsIncluded(p) {
			out = append(out, p)
		}
	}
	return out
}

// compile turns one "+pattern" or "-pattern" filter into an anchored,
// case-insensitive regex: regex metacharacters are escaped first, then '*'
// and '?' are reinstated as glob wildcards (".*" / "."), matching
// createFilterRegex's QuoteMeta-then-unescape approach.
func compile(filter string, osIndependentSeparator bool) (*regexp.Regexp, error) {
	if len(filter) == 0 {
		return nil, fmt.Errorf("empty filter")
	}
	pattern := regexp.QuoteMeta(filter[1:])
	pattern = strings.ReplaceAll(pattern, `\*`, ".*")
	pattern = strings.ReplaceAll(pattern, `\?`, ".")

	if osIndependentSeparator {
		// One pass, so the class inserted for '/' is not rewritten again.
		pattern = strings.NewReplacer("/", `[/\\]`, `\\`, `[/\\]`).Replace(pattern)
	}

	return regexp.Compile("(?i)^" + pattern + "$")
}
